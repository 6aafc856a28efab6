package schedule

import (
	"errors"
	"time"
)

// Day of week constants, matching the stored day_of_week column.
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// DaysInWeek is the number of buckets in a derived week schedule.
const DaysInWeek = 7

// DefaultDayNames is the English day-name table. The presentation layer may
// supply a localised table instead.
var DefaultDayNames = [DaysInWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Domain errors
var (
	ErrInvalidDay       = errors.New("day of week must be between 0 and 6")
	ErrInvalidRoutineID = errors.New("routine ID must be positive")
)

// Assignment pairs a weekday with a routine: the routine is scheduled on
// that day. A day may hold any number of assignments, but the (day, routine)
// pair is unique. Assignments are inserted and deleted via toggle, never
// updated in place.
type Assignment struct {
	ID        int64
	DayOfWeek int
	RoutineID int64
	CreatedAt time.Time
}

// Validate checks if the Assignment has valid data.
// PRE: Assignment struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Assignment) Validate() error {
	if !ValidDay(a.DayOfWeek) {
		return ErrInvalidDay
	}
	if a.RoutineID <= 0 {
		return ErrInvalidRoutineID
	}
	return nil
}

// AssignmentDetail is an assignment joined with its routine's name and
// exercise count, as read from the store.
type AssignmentDetail struct {
	Assignment
	RoutineName   string
	ExerciseCount int
}

// ValidDay reports whether day is a valid day_of_week value.
func ValidDay(day int) bool {
	return day >= Sunday && day <= Saturday
}
