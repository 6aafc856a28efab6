package session

import (
	"context"

	domain "fittrack/internal/domain/session"
)

// Store persists workout session history.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Create(ctx context.Context, value domain.Session) error
	Complete(ctx context.Context, value domain.Session) error
	ListRecent(ctx context.Context, limit int) ([]domain.Session, error)
}
