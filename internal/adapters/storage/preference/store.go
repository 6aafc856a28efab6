package preference

import (
	"context"

	domain "fittrack/internal/domain/measurement"
)

// Store persists measurement preferences (one row per measurement type).
type Store interface {
	GetByType(ctx context.Context, measurementType string) (domain.Preference, error)
	Upsert(ctx context.Context, value domain.Preference) error
	List(ctx context.Context) ([]domain.Preference, error)
}
