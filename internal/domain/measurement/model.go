package measurement

import (
	"errors"
	"strings"
	"time"
)

// Measurement type constants.
const (
	TypeWeight  = "weight"
	TypeBodyFat = "body_fat"
	TypeChest   = "chest"
	TypeWaist   = "waist"
	TypeHips    = "hips"
	TypeBiceps  = "biceps"
	TypeThigh   = "thigh"
	TypeCustom  = "custom"
)

// StandardTypes contains every built-in measurement type.
var StandardTypes = []string{
	TypeWeight, TypeBodyFat, TypeChest, TypeWaist, TypeHips, TypeBiceps, TypeThigh,
}

// Unit constants.
const (
	UnitKg      = "kg"
	UnitLb      = "lb"
	UnitCm      = "cm"
	UnitIn      = "in"
	UnitPercent = "percent"
)

// Domain errors
var (
	ErrEmptyType      = errors.New("measurement type cannot be empty")
	ErrInvalidValue   = errors.New("measurement value must be positive")
	ErrInvalidUnit    = errors.New("measurement unit is not recognised")
	ErrMissingDate    = errors.New("measurement date is required")
	ErrMissingCustom  = errors.New("custom measurements require a name")
	ErrTrackingOff    = errors.New("measurement type is not being tracked")
	ErrUnknownConvert = errors.New("no conversion between these units")
)

// Measurement is one logged body measurement. Unit and value are always
// mutually consistent: the value is converted into the stored unit before
// the row is written, never rescaled after read.
type Measurement struct {
	ID         int64
	Type       string
	Value      float64
	Date       time.Time
	Unit       string
	CustomName string // only for TypeCustom
}

// Validate checks if the Measurement has valid data.
// PRE: Measurement struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Measurement) Validate() error {
	if strings.TrimSpace(m.Type) == "" {
		return ErrEmptyType
	}
	if m.Value <= 0 {
		return ErrInvalidValue
	}
	if !validUnit(m.Unit) {
		return ErrInvalidUnit
	}
	if m.Date.IsZero() {
		return ErrMissingDate
	}
	if m.Type == TypeCustom && strings.TrimSpace(m.CustomName) == "" {
		return ErrMissingCustom
	}
	return nil
}

// Preference records whether a measurement type is tracked, its preferred
// unit, and the display name for custom types.
type Preference struct {
	ID         int64
	Type       string
	IsTracking bool
	CustomName string
	Unit       string
}

// DefaultPreference returns the out-of-the-box preference for a type:
// tracking on, unit per DefaultUnitFor.
func DefaultPreference(measurementType string) Preference {
	return Preference{
		Type:       measurementType,
		IsTracking: true,
		Unit:       DefaultUnitFor(measurementType),
	}
}

// DefaultUnitFor returns the natural unit for a measurement type.
func DefaultUnitFor(measurementType string) string {
	switch measurementType {
	case TypeWeight:
		return UnitKg
	case TypeBodyFat:
		return UnitPercent
	default:
		return UnitCm
	}
}

func validUnit(unit string) bool {
	switch unit {
	case UnitKg, UnitLb, UnitCm, UnitIn, UnitPercent:
		return true
	}
	return false
}
