package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"atarize-core/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 1 * time.Hour

// SessionRepository keeps each session as a flat Redis hash so individual
// flags stay inspectable with HGETALL during debugging. History and the
// discussed-topics set are JSON-encoded fields inside the hash.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *SessionRepository) Save(ctx context.Context, session store.Session) error {
	history, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("marshal session history: %w", err)
	}
	topics, err := json.Marshal(session.TopicsDiscussed)
	if err != nil {
		return fmt.Errorf("marshal session topics: %w", err)
	}

	key := sessionKey(session.ID)
	fields := map[string]interface{}{
		"greeted":             strconv.FormatBool(session.Greeted),
		"lead_pending":        strconv.FormatBool(session.LeadPending),
		"lead_collected":      strconv.FormatBool(session.LeadCollected),
		"lead_attempts":       session.LeadAttempts,
		"positive_turns":      session.PositiveTurns,
		"informative_replies": session.InformativeReplies,
		"business_type":       session.BusinessType,
		"last_intent":         session.LastIntent,
		"history":             history,
		"topics_discussed":    topics,
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (store.Session, bool, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return store.Session{}, false, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if len(fields) == 0 {
		return store.Session{}, false, nil
	}

	session := store.Session{
		ID:            sessionID,
		Greeted:       fields["greeted"] == "true",
		LeadPending:   fields["lead_pending"] == "true",
		LeadCollected: fields["lead_collected"] == "true",
		BusinessType:  fields["business_type"],
		LastIntent:    fields["last_intent"],
	}
	session.LeadAttempts, _ = strconv.Atoi(fields["lead_attempts"])
	session.PositiveTurns, _ = strconv.Atoi(fields["positive_turns"])
	session.InformativeReplies, _ = strconv.Atoi(fields["informative_replies"])

	if raw := fields["history"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.History); err != nil {
			return store.Session{}, false, fmt.Errorf("decode session history: %w", err)
		}
	}
	if raw := fields["topics_discussed"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.TopicsDiscussed); err != nil {
			return store.Session{}, false, fmt.Errorf("decode session topics: %w", err)
		}
	}
	return session, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
