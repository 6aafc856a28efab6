package projections

import (
	"context"
	"time"

	"fittrack/internal/domain/schedule"
)

// GetCalendarMarkersQuery carries parameters for the calendar projection.
type GetCalendarMarkersQuery struct {
	Start      time.Time // "today"; the window's first date
	WindowDays int       // 0 means schedule.DefaultWindowDays
}

// CalendarMarkersResult is the derived calendar view: per-date markers plus
// the legend pairing each coloring routine with its palette color.
type CalendarMarkersResult struct {
	Markers map[string]schedule.Marker
	Legend  []schedule.LegendEntry
}

// QueryGetCalendarMarkers derives the rolling calendar window from the
// weekly schedule. The marker map always contains the start date.
// PRE: deps.ScheduleStore is set, query.Start is non-zero
// POST: Returns markers for every scheduled date in the window plus today
func QueryGetCalendarMarkers(ctx context.Context, query GetCalendarMarkersQuery, deps GetWeekScheduleDeps) (CalendarMarkersResult, error) {
	week, err := QueryGetWeekSchedule(ctx, deps)
	if err != nil {
		return CalendarMarkersResult{}, err
	}
	return CalendarMarkersResult{
		Markers: schedule.BuildMarkers(week, query.Start, query.WindowDays, schedule.DefaultPalette),
		Legend:  schedule.Legend(week, schedule.DefaultPalette),
	}, nil
}
