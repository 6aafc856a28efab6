package measurement

import (
	"context"
	"time"

	domain "fittrack/internal/domain/measurement"
)

// ListFilter narrows measurement queries.
type ListFilter struct {
	Type  string    // required
	Since time.Time // zero value means no lower bound
}

// Store persists Measurement state.
type Store interface {
	Create(ctx context.Context, value domain.Measurement) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter) ([]domain.Measurement, error)
	Latest(ctx context.Context, measurementType string) (domain.Measurement, error)
}
