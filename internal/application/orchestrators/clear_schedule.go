package orchestrators

import (
	"context"
	"log/slog"

	scheduleDomain "fittrack/internal/domain/schedule"
)

// ClearScheduleStore defines the schedule store interface needed by the
// clear orchestrators.
type ClearScheduleStore interface {
	ClearDay(ctx context.Context, day int) error
	ClearAll(ctx context.Context) error
}

// ClearScheduleDeps holds dependencies for ClearDay and ClearAll.
type ClearScheduleDeps struct {
	ScheduleStore ClearScheduleStore
}

// ExecuteClearDay removes every assignment on one weekday.
// PRE: day is 0..6
// POST: The day has no assignments; other days are untouched
func ExecuteClearDay(ctx context.Context, day int, deps ClearScheduleDeps) error {
	if !scheduleDomain.ValidDay(day) {
		return scheduleDomain.ErrInvalidDay
	}
	if err := deps.ScheduleStore.ClearDay(ctx, day); err != nil {
		return err
	}
	slog.Info("schedule_event", "event", "day_cleared", "day", day)
	return nil
}

// ExecuteClearAll removes every assignment in the weekly schedule.
// POST: The schedule is empty
func ExecuteClearAll(ctx context.Context, deps ClearScheduleDeps) error {
	if err := deps.ScheduleStore.ClearAll(ctx); err != nil {
		return err
	}
	slog.Info("schedule_event", "event", "schedule_cleared")
	return nil
}
