package events

import "time"

const TypeLeadCaptured = "LEAD_CAPTURED"

// NewLeadCaptured builds the event emitted after a visitor's contact details
// were validated. RawMessage keeps the original utterance for the sales team.
func NewLeadCaptured(sessionID, name, phone, email, rawMessage string) Event {
	return BaseEvent{
		Type: TypeLeadCaptured,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"name":        name,
			"phone":       phone,
			"email":       email,
			"raw_message": rawMessage,
		},
		OccurredAt: time.Now(),
	}
}
