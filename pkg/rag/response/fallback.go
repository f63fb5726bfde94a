package response

import (
	"fmt"
	"strings"

	"atarize-core/pkg/rag/classify"
)

// Fallbacks holds every deterministic, non-generated reply the pipeline can
// return. These are last-resort or flow-control messages; ordinary answers
// always come from the completion service.
type Fallbacks struct{}

func NewFallbacks() *Fallbacks {
	return &Fallbacks{}
}

// Apology is the final reply after generation failed twice.
func (f *Fallbacks) Apology(lang string) string {
	if lang == classify.LangHebrew {
		return "סליחה, משהו השתבש אצלי כרגע. אפשר לנסות לנסח את השאלה אחרת, או להשאיר שם, טלפון ואימייל ונחזור אליך בהקדם. 🙏"
	}
	return "Sorry, something went wrong on my side. You can try rephrasing the question, or leave your name, phone and email and we'll get back to you shortly. 🙏"
}

// Greeting is the deterministic welcome when the generated one fails.
func (f *Fallbacks) Greeting(lang string) string {
	if lang == classify.LangHebrew {
		return "שלום! איך אפשר לעזור? 😊 אני עטרה מ־Atarize - אשמח לעזור לך עם כל מה שקשור לבוטים חכמים לעסקים. מה מעניין אותך לדעת?"
	}
	return "Hello! How can I help? 😊 I'm Atara from Atarize - I'd be happy to help you with everything related to smart business bots. What would you like to know?"
}

// LeadTransition asks for contact details after buying intent or
// accumulated engagement.
func (f *Fallbacks) LeadTransition(lang string) string {
	if lang == classify.LangHebrew {
		return "מעולה! כדי שנוכל להתחיל להקים את הבוט המותאם לך, אני צריכה את הפרטים שלך. אפשר שם מלא, טלפון ואימייל?"
	}
	return "Great! To start setting up your personalized bot, I need your details. Can you share your full name, phone, and email?"
}

// LeadConfirmed acknowledges a collected record when generation fails.
func (f *Fallbacks) LeadConfirmed(lang, name string) string {
	if lang == classify.LangHebrew {
		if name != "" {
			return fmt.Sprintf("תודה %s! קיבלתי את הפרטים ונחזור אליך בהקדם. בינתיים, אשמח לענות על כל שאלה נוספת. 😊", name)
		}
		return "תודה! קיבלתי את הפרטים ונחזור אליך בהקדם. בינתיים, אשמח לענות על כל שאלה נוספת. 😊"
	}
	if name != "" {
		return fmt.Sprintf("Thank you %s! I've got your details and we'll be in touch shortly. Meanwhile, I'm happy to answer any other questions. 😊", name)
	}
	return "Thank you! I've got your details and we'll be in touch shortly. Meanwhile, I'm happy to answer any other questions. 😊"
}

// Disengage acknowledges the user's exit from lead collection.
func (f *Fallbacks) Disengage(lang string) string {
	if lang == classify.LangHebrew {
		return "בסדר גמור! אם תרצה עזרה בעתיד, אני כאן. איך אפשר לעזור? 😊"
	}
	return "No worries, let's continue. Feel free to ask me anything! 😊"
}

// Closure answers a status question after a lead was already collected.
func (f *Fallbacks) Closure(lang string) string {
	if lang == classify.LangHebrew {
		return "הפרטים שלך כבר אצלנו והצוות ייצור איתך קשר בהקדם. יש עוד משהו שאפשר לעזור בו בינתיים? 😊"
	}
	return "We already have your details and the team will contact you soon. Is there anything else I can help with in the meantime? 😊"
}

// MissingFields re-asks for whichever contact fields did not validate.
func (f *Fallbacks) MissingFields(lang string, missing []string) string {
	if len(missing) == 0 {
		return f.LeadTransition(lang)
	}
	if lang == classify.LangHebrew {
		translated := make([]string, len(missing))
		for i, field := range missing {
			switch field {
			case "name":
				translated[i] = "שם מלא"
			case "phone":
				translated[i] = "טלפון"
			case "email":
				translated[i] = "אימייל"
			default:
				translated[i] = field
			}
		}
		return fmt.Sprintf("כמעט שם! חסר לי עוד: %s. אפשר להשלים? 🙏", strings.Join(translated, ", "))
	}
	return fmt.Sprintf("Almost there! I'm still missing: %s. Could you complete those? 🙏", strings.Join(missing, ", "))
}

// Clarify handles very short, unclear input by inviting specifics.
func (f *Fallbacks) Clarify(lang string) string {
	if lang == classify.LangHebrew {
		return "לא בטוחה שהבנתי 🙂 אפשר לפרט קצת יותר? ואם נוח לך, אפשר גם להשאיר שם, טלפון ואימייל ונחזור אליך."
	}
	return "I'm not sure I caught that 🙂 Could you share a bit more detail? And if you prefer, you can leave your name, phone and email and we'll reach out."
}
