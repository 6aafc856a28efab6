package web

import "net/http"

// registerRoutes wires every API endpoint onto the mux. Method dispatch
// happens inside each handler.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/routines", handleRoutines)
	mux.HandleFunc("/api/routines/exercises", handleRoutineExercises)
	mux.HandleFunc("/api/exercises", handleExercises)

	mux.HandleFunc("/api/schedule", handleSchedule)
	mux.HandleFunc("/api/schedule/toggle", handleScheduleToggle)
	mux.HandleFunc("/api/schedule/clear-day", handleScheduleClearDay)
	mux.HandleFunc("/api/schedule/clear-all", handleScheduleClearAll)
	mux.HandleFunc("/api/calendar/markers", handleCalendarMarkers)

	mux.HandleFunc("/api/measurements", handleMeasurements)
	mux.HandleFunc("/api/measurements/latest", handleMeasurementLatest)
	mux.HandleFunc("/api/measurement-preferences", handleMeasurementPreferences)

	mux.HandleFunc("/api/sessions", handleSessions)
	mux.HandleFunc("/api/sessions/complete", handleSessionComplete)
	mux.HandleFunc("/api/summary/send", handleSummarySend)

	mux.HandleFunc("/api/perf", handlePerf)
}
