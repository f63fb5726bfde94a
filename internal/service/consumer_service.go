package service

import (
	"context"
	"encoding/json"
	"log"

	"atarize-core/internal/dto"
	"atarize-core/internal/pkg/mailer"
	"atarize-core/pkg/events"
	pkgNats "atarize-core/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the lead topic: every captured lead is mailed to the
// sales target and mirrored onto the NATS event bus.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	natsPub      *pkgNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	natsPub *pkgNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		natsPub:      natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishLeadMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal lead message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing lead for session %s (name=%s)", payload.SessionID, payload.Name)

	if cs.emailService != nil {
		if err := cs.emailService.SendLeadNotification(payload.Name, payload.Phone, payload.Email, payload.RawMessage); err != nil {
			log.Printf("[ERROR] Failed to send lead email for session %s: %v", payload.SessionID, err)
			msg.Nack() // Nack for retriable errors
			return
		}
	}

	// Mirror to NATS for downstream consumers (CRM sync, analytics). The
	// email already went out, so a bus failure is logged, not retried.
	if cs.natsPub != nil {
		evt := events.NewLeadCaptured(payload.SessionID, payload.Name, payload.Phone, payload.Email, payload.RawMessage)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish LEAD_CAPTURED event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Lead processed for session %s", payload.SessionID)
	msg.Ack()
}
