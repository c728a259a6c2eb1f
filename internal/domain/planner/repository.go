package planner

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the storage contract for planning sessions.
// Sessions live for the duration of one browser visit; implementations are
// in-memory.
type SessionRepository interface {
	// FindByID retrieves a session by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)

	// Save persists a new session.
	Save(ctx context.Context, session *Session) error

	// Update persists changes to an existing session with optimistic locking.
	Update(ctx context.Context, session *Session) error
}
