package projections

import (
	"context"
	"database/sql"
	"errors"
	"time"

	measurementStore "fittrack/internal/adapters/storage/measurement"
	measurementDomain "fittrack/internal/domain/measurement"
)

// DefaultHistoryWindowDays is the default chart window.
const DefaultHistoryWindowDays = 90

// HistoryMeasurementStore defines the store interface needed by this projection.
type HistoryMeasurementStore interface {
	List(ctx context.Context, filter measurementStore.ListFilter) ([]measurementDomain.Measurement, error)
}

// HistoryPreferenceStore defines the store interface needed by this projection.
type HistoryPreferenceStore interface {
	GetByType(ctx context.Context, measurementType string) (measurementDomain.Preference, error)
}

// GetMeasurementHistoryDeps holds dependencies for the projection.
type GetMeasurementHistoryDeps struct {
	MeasurementStore HistoryMeasurementStore
	PreferenceStore  HistoryPreferenceStore
}

// GetMeasurementHistoryQuery carries parameters for the projection.
type GetMeasurementHistoryQuery struct {
	Type       string
	WindowDays int       // 0 means DefaultHistoryWindowDays
	Now        time.Time // window upper bound
}

// HistoryPoint is one chart data point.
type HistoryPoint struct {
	Date  time.Time
	Value float64
}

// MeasurementHistoryResult is the derived chart view for one type.
type MeasurementHistoryResult struct {
	Type           string
	Unit           string
	Points         []HistoryPoint
	Latest         float64
	HasLatest      bool
	WeeklyDelta    float64 // latest minus the newest value at least 7 days older
	HasWeeklyDelta bool
}

// QueryGetMeasurementHistory windows a measurement series for charting and
// computes the week-over-week delta. Values are returned as stored: the save
// path already normalised them into the preferred unit.
// PRE: query.Type is non-empty, query.Now is non-zero
// POST: Points are ordered by date ascending within the window
func QueryGetMeasurementHistory(ctx context.Context, query GetMeasurementHistoryQuery, deps GetMeasurementHistoryDeps) (MeasurementHistoryResult, error) {
	windowDays := query.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}

	unit := measurementDomain.DefaultUnitFor(query.Type)
	pref, err := deps.PreferenceStore.GetByType(ctx, query.Type)
	switch {
	case err == nil:
		unit = pref.Unit
	case errors.Is(err, sql.ErrNoRows):
		// no stored preference, fall back to the natural unit
	default:
		return MeasurementHistoryResult{}, err
	}

	since := query.Now.AddDate(0, 0, -windowDays)
	rows, err := deps.MeasurementStore.List(ctx, measurementStore.ListFilter{Type: query.Type, Since: since})
	if err != nil {
		return MeasurementHistoryResult{}, err
	}

	result := MeasurementHistoryResult{Type: query.Type, Unit: unit}
	for _, m := range rows {
		result.Points = append(result.Points, HistoryPoint{Date: m.Date, Value: m.Value})
	}

	if len(result.Points) > 0 {
		latest := result.Points[len(result.Points)-1]
		result.Latest = latest.Value
		result.HasLatest = true

		cutoff := latest.Date.AddDate(0, 0, -7)
		for i := len(result.Points) - 2; i >= 0; i-- {
			if !result.Points[i].Date.After(cutoff) {
				result.WeeklyDelta = latest.Value - result.Points[i].Value
				result.HasWeeklyDelta = true
				break
			}
		}
	}
	return result, nil
}
