package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// PublishLeadMessage is the gochannel payload emitted when a visitor's
// contact details were validated.
type PublishLeadMessage struct {
	SessionID  string `json:"session_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	RawMessage string `json:"raw_message"`
}
