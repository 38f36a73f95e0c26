package domain

import (
	"context"
	"time"
)

// Session ties an issued token to a user so logout can revoke it. Sessions
// have no expiry; they live until explicitly cleared.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetUserID returns ErrNotFound for unknown or revoked sessions.
	GetUserID(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
