package projections

import (
	"context"

	exerciseDomain "fittrack/internal/domain/exercise"
	routineDomain "fittrack/internal/domain/routine"
)

// RoutineDetailRoutineStore defines the store interface needed by this projection.
type RoutineDetailRoutineStore interface {
	GetByID(ctx context.Context, id int64) (routineDomain.Routine, error)
}

// RoutineDetailEntryStore defines the store interface needed by this projection.
type RoutineDetailEntryStore interface {
	ListByRoutineID(ctx context.Context, routineID int64) ([]routineDomain.ExerciseEntry, error)
}

// RoutineDetailExerciseStore defines the store interface needed by this projection.
type RoutineDetailExerciseStore interface {
	GetByID(ctx context.Context, id int64) (exerciseDomain.Exercise, error)
}

// GetRoutineDetailDeps holds dependencies for the projection.
type GetRoutineDetailDeps struct {
	RoutineStore  RoutineDetailRoutineStore
	EntryStore    RoutineDetailEntryStore
	ExerciseStore RoutineDetailExerciseStore
}

// RoutineDetailItem is one exercise slot in a routine, enriched with the
// exercise's display fields.
type RoutineDetailItem struct {
	EntryID       int64
	ExerciseID    int64
	ExerciseName  string
	PrimaryMuscle string
	OrderNum      int
	Sets          int
}

// RoutineDetailResult is a routine with its ordered exercise list.
type RoutineDetailResult struct {
	Routine routineDomain.Routine
	Items   []RoutineDetailItem
}

// QueryGetRoutineDetail resolves a routine and its exercise list in
// position order, enriching each entry with exercise info. Entries whose
// exercise no longer exists are skipped.
// PRE: id is positive
// POST: Items are ordered by OrderNum
func QueryGetRoutineDetail(ctx context.Context, id int64, deps GetRoutineDetailDeps) (RoutineDetailResult, error) {
	r, err := deps.RoutineStore.GetByID(ctx, id)
	if err != nil {
		return RoutineDetailResult{}, err
	}

	entries, err := deps.EntryStore.ListByRoutineID(ctx, id)
	if err != nil {
		return RoutineDetailResult{}, err
	}

	result := RoutineDetailResult{Routine: r}
	for _, entry := range entries {
		ex, err := deps.ExerciseStore.GetByID(ctx, entry.ExerciseID)
		if err != nil {
			continue // skip entries pointing at deleted exercises
		}
		result.Items = append(result.Items, RoutineDetailItem{
			EntryID:       entry.ID,
			ExerciseID:    entry.ExerciseID,
			ExerciseName:  ex.Name,
			PrimaryMuscle: ex.PrimaryMuscle,
			OrderNum:      entry.OrderNum,
			Sets:          entry.Sets,
		})
	}
	return result, nil
}
