package orchestrators

import (
	"context"
	"log/slog"
	"time"

	routineDomain "fittrack/internal/domain/routine"
	scheduleDomain "fittrack/internal/domain/schedule"
)

// ToggleScheduleStore defines the schedule store interface needed by ToggleAssignment.
type ToggleScheduleStore interface {
	Toggle(ctx context.Context, day int, routineID int64, now time.Time) (inserted bool, err error)
}

// ToggleRoutineStore defines the routine store interface needed by ToggleAssignment.
type ToggleRoutineStore interface {
	GetByID(ctx context.Context, id int64) (routineDomain.Routine, error)
}

// ToggleAssignmentInput carries input for the toggle orchestrator.
type ToggleAssignmentInput struct {
	DayOfWeek int
	RoutineID int64
}

// ToggleAssignmentResult reports what the toggle did.
type ToggleAssignmentResult struct {
	Assigned bool // true if the pair now exists, false if it was removed
}

// ToggleAssignmentDeps holds dependencies for ToggleAssignment.
type ToggleAssignmentDeps struct {
	ScheduleStore ToggleScheduleStore
	RoutineStore  ToggleRoutineStore
	Now           func() time.Time // nil defaults to time.Now
}

// ExecuteToggleAssignment flips a (day, routine) schedule pair: assigned
// pairs are removed, absent pairs are created. Toggling the same pair twice
// always restores the starting state.
// PRE: DayOfWeek is 0..6 and RoutineID refers to an existing routine
// POST: The pair's presence is inverted; Assigned reports the new state
func ExecuteToggleAssignment(ctx context.Context, input ToggleAssignmentInput, deps ToggleAssignmentDeps) (ToggleAssignmentResult, error) {
	if !scheduleDomain.ValidDay(input.DayOfWeek) {
		return ToggleAssignmentResult{}, scheduleDomain.ErrInvalidDay
	}
	if input.RoutineID <= 0 {
		return ToggleAssignmentResult{}, scheduleDomain.ErrInvalidRoutineID
	}

	r, err := deps.RoutineStore.GetByID(ctx, input.RoutineID)
	if err != nil {
		return ToggleAssignmentResult{}, err
	}

	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}

	inserted, err := deps.ScheduleStore.Toggle(ctx, input.DayOfWeek, input.RoutineID, now)
	if err != nil {
		return ToggleAssignmentResult{}, err
	}

	slog.Info("schedule_event", "event", "assignment_toggled", "day", input.DayOfWeek, "routine_id", input.RoutineID, "routine", r.Name, "assigned", inserted)
	return ToggleAssignmentResult{Assigned: inserted}, nil
}
