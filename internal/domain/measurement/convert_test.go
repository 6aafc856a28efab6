package measurement_test

import (
	"math"
	"testing"

	"fittrack/internal/domain/measurement"
)

// TestKgLb_RoundTrip verifies lb→kg inverts kg→lb within float tolerance.
func TestKgLb_RoundTrip(t *testing.T) {
	for _, kg := range []float64{0.1, 1, 62.5, 82.345, 150, 300} {
		got := measurement.LbToKg(measurement.KgToLb(kg))
		if rel := math.Abs(got-kg) / kg; rel > 1e-6 {
			t.Errorf("round trip of %v kg = %v (relative error %v)", kg, got, rel)
		}
	}
}

// TestKgToLb verifies the conversion factor.
func TestKgToLb(t *testing.T) {
	if got := measurement.KgToLb(100); math.Abs(got-220.462) > 1e-9 {
		t.Errorf("KgToLb(100) = %v, want 220.462", got)
	}
}

// TestConvert tests unit pairs.
func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		from    string
		to      string
		want    float64
		wantErr bool
	}{
		{name: "identity kg", value: 80, from: measurement.UnitKg, to: measurement.UnitKg, want: 80},
		{name: "kg to lb", value: 100, from: measurement.UnitKg, to: measurement.UnitLb, want: 220.462},
		{name: "lb to kg", value: 220.462, from: measurement.UnitLb, to: measurement.UnitKg, want: 100},
		{name: "cm to in", value: 2.54, from: measurement.UnitCm, to: measurement.UnitIn, want: 1},
		{name: "in to cm", value: 1, from: measurement.UnitIn, to: measurement.UnitCm, want: 2.54},
		{name: "identity percent", value: 18, from: measurement.UnitPercent, to: measurement.UnitPercent, want: 18},
		{name: "percent to kg", value: 18, from: measurement.UnitPercent, to: measurement.UnitKg, wantErr: true},
		{name: "kg to cm", value: 80, from: measurement.UnitKg, to: measurement.UnitCm, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := measurement.Convert(tt.value, tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}
