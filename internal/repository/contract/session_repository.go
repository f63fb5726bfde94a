package contract

import (
	"context"

	"atarize-core/pkg/store"
)

// SessionRepository persists conversation sessions between requests. Sessions
// are value types; Save stores the whole session after a turn completes.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (store.Session, bool, error)
	Save(ctx context.Context, session store.Session) error
	Delete(ctx context.Context, sessionID string) error
}
