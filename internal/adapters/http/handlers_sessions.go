package web

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/application/orchestrators"
	"fittrack/internal/application/projections"
	sessionDomain "fittrack/internal/domain/session"
)

// sessionDTO is the JSON shape of a workout session.
type sessionDTO struct {
	ID          string `json:"id"`
	RoutineID   int64  `json:"routine_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`
}

func toSessionDTO(s sessionDomain.Session) sessionDTO {
	dto := sessionDTO{
		ID:        s.ID,
		RoutineID: s.RoutineID,
		StartedAt: s.StartedAt.UTC().Format(time.RFC3339),
		Notes:     s.Notes,
	}
	if dur, ok := s.Duration(); ok {
		dto.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339)
		dto.DurationMin = int(dur.Minutes())
	}
	return dto
}

// handleSessions handles /api/sessions: GET lists recent sessions
// (optional ?limit=), POST starts a new one.
func handleSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		limit := 20
		if l := r.URL.Query().Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive number", http.StatusBadRequest)
				return
			}
			limit = n
		}
		sessions, err := stores.SessionStore.ListRecent(ctx, limit)
		if err != nil {
			internalError(w, err)
			return
		}
		dtos := make([]sessionDTO, 0, len(sessions))
		for _, s := range sessions {
			dtos = append(dtos, toSessionDTO(s))
		}
		writeJSON(w, http.StatusOK, dtos)

	case "POST":
		var body struct {
			RoutineID int64 `json:"routine_id"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		deps := orchestrators.SessionDeps{
			SessionStore: stores.SessionStore,
			RoutineStore: stores.RoutineStore,
			GenerateID:   generateID,
			Now:          timeNow,
		}
		result, err := orchestrators.ExecuteStartSession(ctx, orchestrators.StartSessionInput{RoutineID: body.RoutineID}, deps)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "routine not found", http.StatusNotFound)
		case errors.Is(err, sessionDomain.ErrInvalidRoutineID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			internalError(w, err)
		default:
			writeJSON(w, http.StatusCreated, map[string]any{
				"id":         result.SessionID,
				"started_at": result.StartedAt.UTC().Format(time.RFC3339),
			})
		}

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSessionComplete handles POST /api/sessions/complete.
func handleSessionComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ID    string `json:"id"`
		Notes string `json:"notes"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.SessionDeps{
		SessionStore: stores.SessionStore,
		RoutineStore: stores.RoutineStore,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	input := orchestrators.CompleteSessionInput{SessionID: body.ID, Notes: body.Notes}
	switch err := orchestrators.ExecuteCompleteSession(r.Context(), input, deps); {
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, sessionDomain.ErrAlreadyComplete):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, sessionDomain.ErrNotesTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
	}
}

// handleSummarySend handles POST /api/summary/send: mails the weekly plan.
func handleSummarySend(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if emailSender == nil {
		http.Error(w, "email sending is not configured", http.StatusServiceUnavailable)
		return
	}

	var body struct {
		To []string `json:"to"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	to := body.To
	if len(to) == 0 && emailToAddress != "" {
		to = []string{emailToAddress}
	}
	if len(to) == 0 {
		http.Error(w, "recipient is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.SendWeeklyPlanDeps{
		ScheduleDeps: projections.GetWeekScheduleDeps{ScheduleStore: stores.ScheduleStore},
		Sender:       emailSender,
	}
	result, err := orchestrators.ExecuteSendWeeklyPlan(r.Context(), orchestrators.SendWeeklyPlanInput{To: to}, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent", "message_id": result.MessageID})
}
