package domain

import (
	"context"
	"time"
)

// Session is one issued token. Its ID is the token's jti claim; deleting the
// row revokes the token immediately.
type Session struct {
	ID        string    `json:"id"` // UUID, equals the token jti
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}
