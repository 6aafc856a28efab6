package exercise

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("exercise name cannot be empty")
	ErrEmptyCategory = errors.New("exercise category cannot be empty")
	ErrEmptyMuscle   = errors.New("exercise primary muscle cannot be empty")
)

// Exercise is one entry in the exercise library. Secondary muscles are
// stored as a single comma-joined column; JoinMuscles and SplitMuscles
// convert at the storage boundary.
type Exercise struct {
	ID               int64
	Name             string
	Category         string
	Description      string
	PrimaryMuscle    string
	SecondaryMuscles []string
	ImageURI         string
}

// Validate checks if the Exercise has valid data.
// PRE: Exercise struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.PrimaryMuscle) == "" {
		return ErrEmptyMuscle
	}
	return nil
}

// JoinMuscles flattens a muscle list into the stored column value.
func JoinMuscles(muscles []string) string {
	return strings.Join(muscles, ", ")
}

// SplitMuscles parses the stored column value back into a list. Blank
// segments are dropped; an empty value yields nil.
func SplitMuscles(value string) []string {
	if value == "" {
		return nil
	}
	var muscles []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			muscles = append(muscles, trimmed)
		}
	}
	return muscles
}
