package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadNotification(name, phone, email, rawMessage string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	leadTarget  string
}

func NewEmailService(host string, port int, username, password, senderEmail, leadTarget string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		leadTarget:  leadTarget,
	}
}

func (s *emailService) SendLeadNotification(name, phone, email, rawMessage string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.leadTarget)
	m.SetHeader("Subject", fmt.Sprintf("New chatbot lead: %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New lead from the Atarize chatbot</h2>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px 4px 0;"><b>Name</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Phone</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Email</b></td><td>%s</td></tr>
			</table>
			<p><b>Original message:</b></p>
			<p style="background: #f5f5f5; padding: 10px; border-radius: 5px;">%s</p>
		</div>
	`, html.EscapeString(name), html.EscapeString(phone), html.EscapeString(email), html.EscapeString(rawMessage))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification for %s: %v\n", name, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent for %s\n", name)
	return nil
}
