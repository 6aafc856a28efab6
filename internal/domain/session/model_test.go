package session_test

import (
	"strings"
	"testing"
	"time"

	"fittrack/internal/domain/session"
)

var start = time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)

// TestSession_Validate tests validation of Session.
func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       session.Session
		wantErr bool
	}{
		{
			name:    "valid session",
			s:       session.Session{ID: "s-1", RoutineID: 1, StartedAt: start},
			wantErr: false,
		},
		{
			name:    "empty ID",
			s:       session.Session{ID: "", RoutineID: 1, StartedAt: start},
			wantErr: true,
		},
		{
			name:    "zero routine ID",
			s:       session.Session{ID: "s-2", RoutineID: 0, StartedAt: start},
			wantErr: true,
		},
		{
			name:    "missing start",
			s:       session.Session{ID: "s-3", RoutineID: 1},
			wantErr: true,
		},
		{
			name:    "notes too long",
			s:       session.Session{ID: "s-4", RoutineID: 1, StartedAt: start, Notes: strings.Repeat("x", session.MaxNotesLength+1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Session.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestSession_Duration verifies duration is only available once completed.
func TestSession_Duration(t *testing.T) {
	s := session.Session{ID: "s-1", RoutineID: 1, StartedAt: start}
	if _, ok := s.Duration(); ok {
		t.Error("Duration() ok for in-progress session")
	}
	s.CompletedAt = start.Add(45 * time.Minute)
	d, ok := s.Duration()
	if !ok || d != 45*time.Minute {
		t.Errorf("Duration() = %v, %v, want 45m, true", d, ok)
	}
}
