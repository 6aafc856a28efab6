package measurement

// Conversion factors.
const (
	LbPerKg = 2.20462
	CmPerIn = 2.54
)

// KgToLb converts kilograms to pounds.
func KgToLb(kg float64) float64 {
	return kg * LbPerKg
}

// LbToKg converts pounds to kilograms.
func LbToKg(lb float64) float64 {
	return lb / LbPerKg
}

// CmToIn converts centimetres to inches.
func CmToIn(cm float64) float64 {
	return cm / CmPerIn
}

// InToCm converts inches to centimetres.
func InToCm(in float64) float64 {
	return in * CmPerIn
}

// Convert rescales value from one unit to another. Same-unit conversion is
// the identity. Only kg↔lb and cm↔in are convertible pairs; anything else
// (including percent to any other unit) is ErrUnknownConvert.
// PRE: from and to are recognised units
// POST: returns the rescaled value, or an error for unconvertible pairs
func Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	switch {
	case from == UnitKg && to == UnitLb:
		return KgToLb(value), nil
	case from == UnitLb && to == UnitKg:
		return LbToKg(value), nil
	case from == UnitCm && to == UnitIn:
		return CmToIn(value), nil
	case from == UnitIn && to == UnitCm:
		return InToCm(value), nil
	}
	return 0, ErrUnknownConvert
}
