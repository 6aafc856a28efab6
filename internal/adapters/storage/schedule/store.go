package schedule

import (
	"context"
	"time"

	domain "fittrack/internal/domain/schedule"
)

// Store persists weekly schedule assignments. Assignments are only ever
// toggled or cleared; there is no update.
type Store interface {
	ListAssignments(ctx context.Context) ([]domain.AssignmentDetail, error)
	Toggle(ctx context.Context, day int, routineID int64, now time.Time) (inserted bool, err error)
	ClearDay(ctx context.Context, day int) error
	ClearAll(ctx context.Context) error
}
