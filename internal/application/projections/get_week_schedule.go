package projections

import (
	"context"

	"fittrack/internal/domain/schedule"
)

// WeekScheduleStore defines the store interface needed by this projection.
type WeekScheduleStore interface {
	ListAssignments(ctx context.Context) ([]schedule.AssignmentDetail, error)
}

// GetWeekScheduleDeps holds dependencies for the projection.
type GetWeekScheduleDeps struct {
	ScheduleStore WeekScheduleStore
	DayNames      [schedule.DaysInWeek]string // localised table from the presentation layer
}

// QueryGetWeekSchedule derives the 7-bucket weekly view from the flat
// assignment rows. Recomputed on every call; nothing is cached.
// PRE: deps.ScheduleStore is set
// POST: Returns exactly 7 buckets in Sunday→Saturday order
func QueryGetWeekSchedule(ctx context.Context, deps GetWeekScheduleDeps) (schedule.WeekSchedule, error) {
	rows, err := deps.ScheduleStore.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	names := deps.DayNames
	if names == ([schedule.DaysInWeek]string{}) {
		names = schedule.DefaultDayNames
	}
	return schedule.AggregateWeek(rows, names), nil
}
