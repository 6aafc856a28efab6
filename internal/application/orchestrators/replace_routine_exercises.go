package orchestrators

import (
	"context"
	"log/slog"

	routineDomain "fittrack/internal/domain/routine"
)

// RoutineExerciseReplaceStore defines the entry store interface needed by
// ReplaceRoutineExercises.
type RoutineExerciseReplaceStore interface {
	ReplaceForRoutine(ctx context.Context, routineID int64, entries []routineDomain.ExerciseEntry) error
}

// ReplaceRoutineExercisesInput carries the full replacement exercise list
// for one routine. Entry order in the slice is the display order.
type ReplaceRoutineExercisesInput struct {
	RoutineID int64
	Entries   []routineDomain.ExerciseEntry
}

// ReplaceRoutineExercisesDeps holds dependencies for ReplaceRoutineExercises.
type ReplaceRoutineExercisesDeps struct {
	RoutineStore ToggleRoutineStore
	EntryStore   RoutineExerciseReplaceStore
}

// ExecuteReplaceRoutineExercises swaps a routine's exercise list for the
// given entries in one transaction. Positions are renumbered densely from
// zero, so callers may pass entries with stale order values.
// PRE: RoutineID refers to an existing routine; every entry validates
// POST: The routine's entries exactly match input order, numbered 0..n-1
func ExecuteReplaceRoutineExercises(ctx context.Context, input ReplaceRoutineExercisesInput, deps ReplaceRoutineExercisesDeps) error {
	if _, err := deps.RoutineStore.GetByID(ctx, input.RoutineID); err != nil {
		return err
	}

	entries := make([]routineDomain.ExerciseEntry, len(input.Entries))
	copy(entries, input.Entries)
	routineDomain.Renumber(entries)
	for i := range entries {
		entries[i].RoutineID = input.RoutineID
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}

	if err := deps.EntryStore.ReplaceForRoutine(ctx, input.RoutineID, entries); err != nil {
		return err
	}

	slog.Info("routine_event", "event", "exercises_replaced", "routine_id", input.RoutineID, "count", len(entries))
	return nil
}
