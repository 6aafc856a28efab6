package routine

import (
	"errors"
	"strings"
	"time"
)

// Length limits for routine fields.
const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyName          = errors.New("routine name cannot be empty")
	ErrNameTooLong        = errors.New("routine name cannot exceed 120 characters")
	ErrDescriptionTooLong = errors.New("routine description cannot exceed 2000 characters")
)

// Routine is a named workout template: an ordered list of exercise entries
// the user runs as one session. The entries live in ExerciseEntry rows owned
// by the routine.
type Routine struct {
	ID          int64
	Name        string
	Description string // markdown
	CreatedAt   time.Time
}

// Validate checks if the Routine has valid data.
// PRE: Routine struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Routine) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(r.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
