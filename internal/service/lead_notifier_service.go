package service

import (
	"context"
	"encoding/json"
	"fmt"

	"atarize-core/internal/dto"
	"atarize-core/pkg/rag/lead"
)

// leadNotifierService hands validated leads off to the event bus. Delivery
// (email, NATS fan-out) happens asynchronously in the consumer so the chat
// reply never waits on SMTP.
type leadNotifierService struct {
	publisher IPublisherService
}

func NewLeadNotifierService(publisher IPublisherService) *leadNotifierService {
	return &leadNotifierService{publisher: publisher}
}

func (s *leadNotifierService) Notify(ctx context.Context, sessionID string, record lead.Record, rawMessage string) error {
	payload := dto.PublishLeadMessage{
		SessionID:  sessionID,
		Name:       record.Name,
		Phone:      record.Phone,
		Email:      record.Email,
		RawMessage: rawMessage,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead message: %w", err)
	}
	return s.publisher.Publish(ctx, msgJson)
}
