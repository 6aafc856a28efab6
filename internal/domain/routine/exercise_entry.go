package routine

import "errors"

// Entry errors
var (
	ErrInvalidExerciseID = errors.New("entry exercise ID must be positive")
	ErrInvalidSets       = errors.New("entry must have at least one set")
	ErrNegativeOrder     = errors.New("entry order cannot be negative")
)

// ExerciseEntry is one exercise slot inside a routine. Order numbers are
// dense per routine: 0..N-1 with no gaps, restored by Renumber after every
// edit.
type ExerciseEntry struct {
	ID         int64
	RoutineID  int64
	ExerciseID int64
	OrderNum   int
	Sets       int
}

// Validate checks if the ExerciseEntry has valid data.
// PRE: ExerciseEntry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *ExerciseEntry) Validate() error {
	if e.ExerciseID <= 0 {
		return ErrInvalidExerciseID
	}
	if e.Sets < 1 {
		return ErrInvalidSets
	}
	if e.OrderNum < 0 {
		return ErrNegativeOrder
	}
	return nil
}

// Renumber rewrites OrderNum to slice position, restoring the dense
// 0..N-1 invariant after removals or reorders.
func Renumber(entries []ExerciseEntry) {
	for i := range entries {
		entries[i].OrderNum = i
	}
}
