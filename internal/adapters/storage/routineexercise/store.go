package routineexercise

import (
	"context"

	domain "fittrack/internal/domain/routine"
)

// Store persists the exercise entries owned by routines.
type Store interface {
	ListByRoutineID(ctx context.Context, routineID int64) ([]domain.ExerciseEntry, error)
	ReplaceForRoutine(ctx context.Context, routineID int64, entries []domain.ExerciseEntry) error
	DeleteForRoutine(ctx context.Context, routineID int64) error
}
