package web

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/application/orchestrators"
	"fittrack/internal/application/projections"
	scheduleDomain "fittrack/internal/domain/schedule"
)

// dayRoutineDTO is one routine inside a day bucket.
type dayRoutineDTO struct {
	RoutineID     int64  `json:"routine_id"`
	Name          string `json:"name"`
	ExerciseCount int    `json:"exercise_count"`
}

// dayBucketDTO is one weekday of the schedule response.
type dayBucketDTO struct {
	Day      int             `json:"day"`
	Name     string          `json:"name"`
	Routines []dayRoutineDTO `json:"routines"`
}

func toWeekDTO(week scheduleDomain.WeekSchedule) []dayBucketDTO {
	dtos := make([]dayBucketDTO, 0, len(week))
	for _, bucket := range week {
		dto := dayBucketDTO{Day: bucket.Day, Name: bucket.Name, Routines: make([]dayRoutineDTO, 0, len(bucket.Routines))}
		for _, rt := range bucket.Routines {
			dto.Routines = append(dto.Routines, dayRoutineDTO{
				RoutineID:     rt.RoutineID,
				Name:          rt.Name,
				ExerciseCount: rt.ExerciseCount,
			})
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// handleSchedule handles GET /api/schedule: the seven-day week view.
func handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	week, err := projections.QueryGetWeekSchedule(r.Context(), projections.GetWeekScheduleDeps{
		ScheduleStore: stores.ScheduleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeekDTO(week))
}

// handleScheduleToggle handles POST /api/schedule/toggle: flips one
// (day, routine) pair.
func handleScheduleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Day       int   `json:"day"`
		RoutineID int64 `json:"routine_id"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := orchestrators.ToggleAssignmentInput{DayOfWeek: body.Day, RoutineID: body.RoutineID}
	deps := orchestrators.ToggleAssignmentDeps{
		ScheduleStore: stores.ScheduleStore,
		RoutineStore:  stores.RoutineStore,
		Now:           timeNow,
	}
	result, err := orchestrators.ExecuteToggleAssignment(r.Context(), input, deps)
	switch {
	case errors.Is(err, scheduleDomain.ErrInvalidDay),
		errors.Is(err, scheduleDomain.ErrInvalidRoutineID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "routine not found", http.StatusNotFound)
	case err != nil:
		internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"assigned": result.Assigned})
	}
}

// handleScheduleClearDay handles POST /api/schedule/clear-day (?day=).
func handleScheduleClearDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "day is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.ClearScheduleDeps{ScheduleStore: stores.ScheduleStore}
	switch err := orchestrators.ExecuteClearDay(r.Context(), day, deps); {
	case errors.Is(err, scheduleDomain.ErrInvalidDay):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

// handleScheduleClearAll handles POST /api/schedule/clear-all.
func handleScheduleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	deps := orchestrators.ClearScheduleDeps{ScheduleStore: stores.ScheduleStore}
	if err := orchestrators.ExecuteClearAll(r.Context(), deps); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// markerDTO is one calendar date marker.
type markerDTO struct {
	Color string `json:"color"`
	Today bool   `json:"today,omitempty"`
}

// handleCalendarMarkers handles GET /api/calendar/markers: the rolling
// marker window derived from the weekly schedule. Optional ?start= (date,
// defaults to today) and ?days= override the window.
func handleCalendarMarkers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := timeNow()
	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := time.Parse(scheduleDomain.DateKeyFormat, s)
		if err != nil {
			http.Error(w, "start must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		start = parsed
	}
	windowDays := 0
	if d := r.URL.Query().Get("days"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n <= 0 {
			http.Error(w, "days must be a positive number", http.StatusBadRequest)
			return
		}
		windowDays = n
	}

	query := projections.GetCalendarMarkersQuery{Start: start, WindowDays: windowDays}
	result, err := projections.QueryGetCalendarMarkers(r.Context(), query, projections.GetWeekScheduleDeps{
		ScheduleStore: stores.ScheduleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	markers := make(map[string]markerDTO, len(result.Markers))
	for date, m := range result.Markers {
		markers[date] = markerDTO{Color: m.Color, Today: m.Today}
	}
	type legendDTO struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	legend := make([]legendDTO, 0, len(result.Legend))
	for _, entry := range result.Legend {
		legend = append(legend, legendDTO{Name: entry.Name, Color: entry.Color})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"markers": markers,
		"legend":  legend,
	})
}
