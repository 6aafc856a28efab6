package web

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/application/orchestrators"
	"fittrack/internal/application/projections"
	measurementDomain "fittrack/internal/domain/measurement"
)

// measurementDTO is the JSON shape of one logged measurement.
type measurementDTO struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Date       string  `json:"date"`
	Unit       string  `json:"unit"`
	CustomName string  `json:"custom_name,omitempty"`
}

func toMeasurementDTO(m measurementDomain.Measurement) measurementDTO {
	return measurementDTO{
		ID:         m.ID,
		Type:       m.Type,
		Value:      m.Value,
		Date:       m.Date.UTC().Format(time.RFC3339),
		Unit:       m.Unit,
		CustomName: m.CustomName,
	}
}

// measurementInput is the JSON body for logging a measurement. Date is
// RFC3339; a missing date means now.
type measurementInput struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Date       string  `json:"date"`
	Unit       string  `json:"unit"`
	CustomName string  `json:"custom_name"`
}

// handleMeasurements handles /api/measurements: GET returns the windowed
// history for one type (?type=, optional ?days=), POST logs a value,
// DELETE removes one (?id=).
func handleMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		measurementType := r.URL.Query().Get("type")
		if measurementType == "" {
			http.Error(w, "type is required", http.StatusBadRequest)
			return
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

		query := projections.GetMeasurementHistoryQuery{
			Type:       measurementType,
			WindowDays: windowDays,
			Now:        timeNow(),
		}
		deps := projections.GetMeasurementHistoryDeps{
			MeasurementStore: stores.MeasurementStore,
			PreferenceStore:  stores.PreferenceStore,
		}
		result, err := projections.QueryGetMeasurementHistory(ctx, query, deps)
		if err != nil {
			internalError(w, err)
			return
		}

		type pointDTO struct {
			Date  string  `json:"date"`
			Value float64 `json:"value"`
		}
		points := make([]pointDTO, 0, len(result.Points))
		for _, p := range result.Points {
			points = append(points, pointDTO{Date: p.Date.UTC().Format(time.RFC3339), Value: p.Value})
		}
		resp := map[string]any{
			"type":   result.Type,
			"unit":   result.Unit,
			"points": points,
		}
		if result.HasLatest {
			resp["latest"] = result.Latest
		}
		if result.HasWeeklyDelta {
			resp["weekly_delta"] = result.WeeklyDelta
		}
		writeJSON(w, http.StatusOK, resp)

	case "POST":
		var input measurementInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		date := timeNow()
		if input.Date != "" {
			parsed, err := time.Parse(time.RFC3339, input.Date)
			if err != nil {
				http.Error(w, "date must be RFC3339", http.StatusBadRequest)
				return
			}
			date = parsed
		}

		m := measurementDomain.Measurement{
			Type:       input.Type,
			Value:      input.Value,
			Date:       date,
			Unit:       input.Unit,
			CustomName: input.CustomName,
		}
		result, err := orchestrators.ExecuteSaveMeasurement(ctx, orchestrators.SaveMeasurementInput{Measurement: m}, orchestrators.SaveMeasurementDeps{
			MeasurementStore: stores.MeasurementStore,
			PreferenceStore:  stores.PreferenceStore,
		})
		switch {
		case errors.Is(err, measurementDomain.ErrTrackingOff):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, measurementDomain.ErrEmptyType),
			errors.Is(err, measurementDomain.ErrInvalidValue),
			errors.Is(err, measurementDomain.ErrInvalidUnit),
			errors.Is(err, measurementDomain.ErrMissingDate),
			errors.Is(err, measurementDomain.ErrMissingCustom),
			errors.Is(err, measurementDomain.ErrUnknownConvert):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			internalError(w, err)
		default:
			m.ID = result.ID
			m.Value = result.Value
			m.Unit = result.Unit
			writeJSON(w, http.StatusCreated, toMeasurementDTO(m))
		}

	case "DELETE":
		id, ok := queryID(r)
		if !ok {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.MeasurementStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// preferenceDTO is the JSON shape of a measurement preference.
type preferenceDTO struct {
	Type       string `json:"type"`
	IsTracking bool   `json:"is_tracking"`
	CustomName string `json:"custom_name,omitempty"`
	Unit       string `json:"unit"`
}

func toPreferenceDTO(p measurementDomain.Preference) preferenceDTO {
	return preferenceDTO{
		Type:       p.Type,
		IsTracking: p.IsTracking,
		CustomName: p.CustomName,
		Unit:       p.Unit,
	}
}

// handleMeasurementPreferences handles /api/measurement-preferences:
// GET lists preferences for every standard type (stored rows merged over
// defaults), PUT upserts one.
func handleMeasurementPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		stored, err := stores.PreferenceStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		byType := make(map[string]measurementDomain.Preference, len(stored))
		for _, p := range stored {
			byType[p.Type] = p
		}

		dtos := make([]preferenceDTO, 0, len(measurementDomain.StandardTypes))
		for _, t := range measurementDomain.StandardTypes {
			p, ok := byType[t]
			if !ok {
				p = measurementDomain.DefaultPreference(t)
			}
			dtos = append(dtos, toPreferenceDTO(p))
			delete(byType, t)
		}
		// Custom preferences come after the standard set.
		for _, p := range stored {
			if _, remaining := byType[p.Type]; remaining {
				dtos = append(dtos, toPreferenceDTO(p))
			}
		}
		writeJSON(w, http.StatusOK, dtos)

	case "PUT":
		var dto preferenceDTO
		if err := strictDecode(r, &dto); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if dto.Type == "" {
			http.Error(w, "type is required", http.StatusBadRequest)
			return
		}
		if dto.Unit == "" {
			dto.Unit = measurementDomain.DefaultUnitFor(dto.Type)
		}
		p := measurementDomain.Preference{
			Type:       dto.Type,
			IsTracking: dto.IsTracking,
			CustomName: dto.CustomName,
			Unit:       dto.Unit,
		}
		if err := stores.PreferenceStore.Upsert(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPreferenceDTO(p))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// latestOrNotFound resolves sql.ErrNoRows into a 404.
func latestOrNotFound(w http.ResponseWriter, err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "no measurements for type", http.StatusNotFound)
		return true
	}
	return false
}

// handleMeasurementLatest handles GET /api/measurements/latest (?type=).
func handleMeasurementLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	measurementType := r.URL.Query().Get("type")
	if measurementType == "" {
		http.Error(w, "type is required", http.StatusBadRequest)
		return
	}

	m, err := stores.MeasurementStore.Latest(r.Context(), measurementType)
	if latestOrNotFound(w, err) {
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeasurementDTO(m))
}
