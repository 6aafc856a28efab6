package session

import (
	"errors"
	"time"
)

// MaxNotesLength caps session notes.
const MaxNotesLength = 2000

// Domain errors
var (
	ErrEmptyID          = errors.New("session ID cannot be empty")
	ErrInvalidRoutineID = errors.New("session routine ID must be positive")
	ErrMissingStart     = errors.New("session start time is required")
	ErrNotesTooLong     = errors.New("session notes cannot exceed 2000 characters")
	ErrAlreadyComplete  = errors.New("session is already completed")
)

// Session is one run of a routine: started from the workout screen,
// completed (or abandoned) with optional notes.
type Session struct {
	ID          string // uuid
	RoutineID   int64
	StartedAt   time.Time
	CompletedAt time.Time // zero value means still in progress
	Notes       string
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if s.RoutineID <= 0 {
		return ErrInvalidRoutineID
	}
	if s.StartedAt.IsZero() {
		return ErrMissingStart
	}
	if len(s.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// Completed reports whether the session has finished.
func (s *Session) Completed() bool {
	return !s.CompletedAt.IsZero()
}

// Duration returns the session length. ok is false while in progress.
func (s *Session) Duration() (time.Duration, bool) {
	if !s.Completed() {
		return 0, false
	}
	return s.CompletedAt.Sub(s.StartedAt), true
}
