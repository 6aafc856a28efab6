package orchestrators

import (
	"context"
	"log/slog"
	"time"

	sessionDomain "fittrack/internal/domain/session"
)

// SessionStore defines the session store interface needed by the session
// orchestrators.
type SessionStore interface {
	GetByID(ctx context.Context, id string) (sessionDomain.Session, error)
	Create(ctx context.Context, value sessionDomain.Session) error
	Complete(ctx context.Context, value sessionDomain.Session) error
}

// StartSessionInput carries input for StartSession.
type StartSessionInput struct {
	RoutineID int64
}

// StartSessionResult reports the created session.
type StartSessionResult struct {
	SessionID string
	StartedAt time.Time
}

// SessionDeps holds dependencies for the session orchestrators.
type SessionDeps struct {
	SessionStore SessionStore
	RoutineStore ToggleRoutineStore
	GenerateID   func() string    // nil is invalid; injected for testability
	Now          func() time.Time // nil defaults to time.Now
}

func (d SessionDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// ExecuteStartSession opens a workout session against an existing routine.
// PRE: RoutineID refers to an existing routine
// POST: A new in-progress session exists with StartedAt=now
func ExecuteStartSession(ctx context.Context, input StartSessionInput, deps SessionDeps) (StartSessionResult, error) {
	r, err := deps.RoutineStore.GetByID(ctx, input.RoutineID)
	if err != nil {
		return StartSessionResult{}, err
	}

	s := sessionDomain.Session{
		ID:        deps.GenerateID(),
		RoutineID: input.RoutineID,
		StartedAt: deps.now(),
	}
	if err := s.Validate(); err != nil {
		return StartSessionResult{}, err
	}
	if err := deps.SessionStore.Create(ctx, s); err != nil {
		return StartSessionResult{}, err
	}

	slog.Info("session_event", "event", "session_started", "session_id", s.ID, "routine_id", input.RoutineID, "routine", r.Name)
	return StartSessionResult{SessionID: s.ID, StartedAt: s.StartedAt}, nil
}

// CompleteSessionInput carries input for CompleteSession.
type CompleteSessionInput struct {
	SessionID string
	Notes     string
}

// ExecuteCompleteSession closes an in-progress session with optional notes.
// PRE: SessionID refers to an existing session
// POST: The session has CompletedAt=now; completing twice fails
func ExecuteCompleteSession(ctx context.Context, input CompleteSessionInput, deps SessionDeps) error {
	s, err := deps.SessionStore.GetByID(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if s.Completed() {
		return sessionDomain.ErrAlreadyComplete
	}

	s.CompletedAt = deps.now()
	s.Notes = input.Notes
	if err := s.Validate(); err != nil {
		return err
	}
	if err := deps.SessionStore.Complete(ctx, s); err != nil {
		return err
	}

	dur, _ := s.Duration()
	slog.Info("session_event", "event", "session_completed", "session_id", s.ID, "routine_id", s.RoutineID, "duration_min", dur.Minutes())
	return nil
}
