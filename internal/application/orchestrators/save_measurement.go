package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	measurementDomain "fittrack/internal/domain/measurement"
)

// MeasurementWriteStore defines the measurement store interface needed by SaveMeasurement.
type MeasurementWriteStore interface {
	Create(ctx context.Context, value measurementDomain.Measurement) (int64, error)
}

// PreferenceLookupStore defines the preference store interface needed by SaveMeasurement.
type PreferenceLookupStore interface {
	GetByType(ctx context.Context, measurementType string) (measurementDomain.Preference, error)
}

// SaveMeasurementInput carries input for the save orchestrator. Unit is the
// unit the user entered the value in, not necessarily the stored one.
type SaveMeasurementInput struct {
	Measurement measurementDomain.Measurement
}

// SaveMeasurementResult reports the stored row.
type SaveMeasurementResult struct {
	ID    int64
	Value float64 // value after conversion into the preferred unit
	Unit  string  // the unit the row was stored in
}

// SaveMeasurementDeps holds dependencies for SaveMeasurement.
type SaveMeasurementDeps struct {
	MeasurementStore MeasurementWriteStore
	PreferenceStore  PreferenceLookupStore
}

// ExecuteSaveMeasurement validates a measurement, converts its value into
// the type's preferred unit, and writes the converted row. Conversion
// happens before the write so stored values never need rescaling on read.
// PRE: input.Measurement carries the user-entered value and unit
// POST: The stored row's value and unit are mutually consistent
func ExecuteSaveMeasurement(ctx context.Context, input SaveMeasurementInput, deps SaveMeasurementDeps) (SaveMeasurementResult, error) {
	m := input.Measurement
	if err := m.Validate(); err != nil {
		return SaveMeasurementResult{}, err
	}

	pref, err := deps.PreferenceStore.GetByType(ctx, m.Type)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		pref = measurementDomain.DefaultPreference(m.Type)
	default:
		return SaveMeasurementResult{}, err
	}
	if !pref.IsTracking {
		return SaveMeasurementResult{}, measurementDomain.ErrTrackingOff
	}

	if m.Unit != pref.Unit {
		converted, err := measurementDomain.Convert(m.Value, m.Unit, pref.Unit)
		if err != nil {
			return SaveMeasurementResult{}, err
		}
		m.Value = converted
		m.Unit = pref.Unit
	}

	id, err := deps.MeasurementStore.Create(ctx, m)
	if err != nil {
		return SaveMeasurementResult{}, err
	}

	slog.Info("measurement_event", "event", "measurement_saved", "id", id, "type", m.Type, "value", m.Value, "unit", m.Unit)
	return SaveMeasurementResult{ID: id, Value: m.Value, Unit: m.Unit}, nil
}
