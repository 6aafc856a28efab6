package schedule_test

import (
	"testing"

	"fittrack/internal/domain/schedule"
)

// TestAssignment_Validate tests validation of Assignment.
func TestAssignment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       schedule.Assignment
		wantErr bool
	}{
		{
			name:    "valid sunday",
			a:       schedule.Assignment{DayOfWeek: schedule.Sunday, RoutineID: 1},
			wantErr: false,
		},
		{
			name:    "valid saturday",
			a:       schedule.Assignment{DayOfWeek: schedule.Saturday, RoutineID: 9},
			wantErr: false,
		},
		{
			name:    "day below range",
			a:       schedule.Assignment{DayOfWeek: -1, RoutineID: 1},
			wantErr: true,
		},
		{
			name:    "day above range",
			a:       schedule.Assignment{DayOfWeek: 7, RoutineID: 1},
			wantErr: true,
		},
		{
			name:    "zero routine ID",
			a:       schedule.Assignment{DayOfWeek: schedule.Monday, RoutineID: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Assignment.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidDay checks the day range boundaries.
func TestValidDay(t *testing.T) {
	for day := 0; day <= 6; day++ {
		if !schedule.ValidDay(day) {
			t.Errorf("ValidDay(%d) = false, want true", day)
		}
	}
	for _, day := range []int{-1, 7, 100} {
		if schedule.ValidDay(day) {
			t.Errorf("ValidDay(%d) = true, want false", day)
		}
	}
}
