package service

import (
	"context"

	"atarize-core/internal/dto"
	"atarize-core/internal/pkg/logger"
	"atarize-core/internal/repository/contract"
	"atarize-core/pkg/rag/executor"
	"atarize-core/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService loads the session, runs one pipeline turn, and persists the
// result. The pipeline works on a session copy, so a mid-turn failure never
// leaves a half-updated session behind.
type chatService struct {
	pipeline    *executor.Pipeline
	sessionRepo contract.SessionRepository
	logger      logger.ILogger
}

func NewChatService(
	pipeline *executor.Pipeline,
	sessionRepo contract.SessionRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		pipeline:    pipeline,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (cs *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session, found, err := cs.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		// A broken session store degrades to a fresh conversation rather
		// than refusing the visitor.
		cs.logger.Warn("chat_service", "Session load failed, starting fresh", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		found = false
	}
	if !found {
		session = store.Session{ID: sessionID}
	}

	reply, next := cs.pipeline.Resolve(ctx, request.Message, session)

	if err := cs.sessionRepo.Save(ctx, next); err != nil {
		cs.logger.Error("chat_service", "Session save failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}

	return &dto.ChatResponse{
		Reply:     reply,
		SessionID: sessionID,
	}, nil
}
