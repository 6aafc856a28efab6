package exercise

import (
	"context"

	domain "fittrack/internal/domain/exercise"
)

// Store persists Exercise state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Exercise, error)
	Create(ctx context.Context, value domain.Exercise) (int64, error)
	Update(ctx context.Context, value domain.Exercise) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Exercise, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Exercise, error)
}
