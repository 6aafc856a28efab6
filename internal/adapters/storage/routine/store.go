package routine

import (
	"context"

	domain "fittrack/internal/domain/routine"
)

// Store persists Routine state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Routine, error)
	Create(ctx context.Context, value domain.Routine) (int64, error)
	Update(ctx context.Context, value domain.Routine) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Routine, error)
}
