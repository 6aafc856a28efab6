package schedule_test

import (
	"testing"
	"time"

	"fittrack/internal/domain/schedule"
)

func weekWith(assignments map[int][]string) schedule.WeekSchedule {
	var rows []schedule.AssignmentDetail
	var id int64
	for day := 0; day < schedule.DaysInWeek; day++ {
		for _, name := range assignments[day] {
			id++
			rows = append(rows, detail(day, id, name, 4))
		}
	}
	return schedule.AggregateWeek(rows, schedule.DefaultDayNames)
}

// TestBuildMarkers_EmptyWeek verifies only today is marked on an empty week.
func TestBuildMarkers_EmptyWeek(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday
	markers := schedule.BuildMarkers(weekWith(nil), start, 28, nil)

	if len(markers) != 1 {
		t.Fatalf("markers = %d entries, want 1", len(markers))
	}
	today, ok := markers["2026-08-24"]
	if !ok {
		t.Fatal("today missing from markers")
	}
	if !today.Today {
		t.Error("today marker missing highlight")
	}
	if today.Color != schedule.AccentColor {
		t.Errorf("today color = %q, want accent %q", today.Color, schedule.AccentColor)
	}
}

// TestBuildMarkers_TodayKeepsFill verifies today's computed fill survives the
// forced highlight.
func TestBuildMarkers_TodayKeepsFill(t *testing.T) {
	week := weekWith(map[int][]string{schedule.Monday: {"Push"}})
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // Monday

	markers := schedule.BuildMarkers(week, start, 28, nil)
	today := markers["2026-08-24"]
	if !today.Today {
		t.Error("today marker missing highlight")
	}
	if today.Color != schedule.DefaultPalette[0] {
		t.Errorf("today color = %q, want %q", today.Color, schedule.DefaultPalette[0])
	}
}

// TestBuildMarkers_ColorStability verifies the same routine gets the same
// color on every date it appears within the window.
func TestBuildMarkers_ColorStability(t *testing.T) {
	week := weekWith(map[int][]string{
		schedule.Monday:   {"Push"},
		schedule.Thursday: {"Push"},
	})
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) // a Sunday

	markers := schedule.BuildMarkers(week, start, 28, nil)

	var seen []string
	for i := 0; i < 28; i++ {
		date := start.AddDate(0, 0, i)
		m, ok := markers[date.Format(schedule.DateKeyFormat)]
		if !ok || (m.Today && m.Color == schedule.AccentColor) {
			continue
		}
		seen = append(seen, m.Color)
	}
	if len(seen) != 8 { // 4 Mondays + 4 Thursdays
		t.Fatalf("marked dates = %d, want 8", len(seen))
	}
	for _, c := range seen {
		if c != schedule.DefaultPalette[0] {
			t.Errorf("color = %q, want stable %q", c, schedule.DefaultPalette[0])
		}
	}
}

// TestBuildMarkers_PaletteRanking verifies distinct first-routine names map
// to palette slots in day order, wrapping at the palette size.
func TestBuildMarkers_PaletteRanking(t *testing.T) {
	week := weekWith(map[int][]string{
		schedule.Monday:    {"Push"},
		schedule.Wednesday: {"Pull"},
		schedule.Friday:    {"Legs"},
	})
	palette := []string{"red", "green", "blue"}
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) // Sunday

	markers := schedule.BuildMarkers(week, start, 7, palette)

	wantByDate := map[string]string{
		"2026-08-24": "red",   // Monday: Push → slot 0
		"2026-08-26": "green", // Wednesday: Pull → slot 1
		"2026-08-28": "blue",  // Friday: Legs → slot 2
	}
	for date, want := range wantByDate {
		if got := markers[date].Color; got != want {
			t.Errorf("markers[%s].Color = %q, want %q", date, got, want)
		}
	}
}

// TestBuildMarkers_PaletteWrap verifies a fourth distinct name wraps modulo
// the palette size.
func TestBuildMarkers_PaletteWrap(t *testing.T) {
	week := weekWith(map[int][]string{
		schedule.Sunday:    {"Push"},
		schedule.Monday:    {"Pull"},
		schedule.Tuesday:   {"Legs"},
		schedule.Wednesday: {"Core"},
	})
	palette := []string{"red", "green", "blue"}
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) // Sunday

	markers := schedule.BuildMarkers(week, start, 7, palette)

	// Core is the fourth distinct name: slot 3 mod 3 = 0.
	if got := markers["2026-08-26"].Color; got != "red" {
		t.Errorf("fourth routine color = %q, want wrapped %q", got, "red")
	}
}

// TestBuildMarkers_SecondAssignmentIgnored verifies only the day's first
// routine determines the fill.
func TestBuildMarkers_SecondAssignmentIgnored(t *testing.T) {
	week := weekWith(map[int][]string{
		schedule.Monday: {"Push", "Cardio"},
	})
	palette := []string{"red", "green"}
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // Monday

	markers := schedule.BuildMarkers(week, start, 7, palette)
	if got := markers["2026-08-24"].Color; got != "red" {
		t.Errorf("color = %q, want first routine's %q", got, "red")
	}
}

// TestLegend verifies legend entries follow the distinct first-routine rank.
func TestLegend(t *testing.T) {
	week := weekWith(map[int][]string{
		schedule.Monday:   {"Push"},
		schedule.Tuesday:  {"Pull"},
		schedule.Thursday: {"Push"}, // duplicate keeps first occurrence
	})
	legend := schedule.Legend(week, []string{"red", "green"})

	if len(legend) != 2 {
		t.Fatalf("legend has %d entries, want 2", len(legend))
	}
	if legend[0].Name != "Push" || legend[0].Color != "red" {
		t.Errorf("legend[0] = %+v, want Push/red", legend[0])
	}
	if legend[1].Name != "Pull" || legend[1].Color != "green" {
		t.Errorf("legend[1] = %+v, want Pull/green", legend[1])
	}
}

// TestBuildMarkers_WindowLength verifies only dates inside the window are
// marked.
func TestBuildMarkers_WindowLength(t *testing.T) {
	week := weekWith(map[int][]string{schedule.Monday: {"Push"}})
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) // Sunday

	markers := schedule.BuildMarkers(week, start, 7, nil)

	if _, ok := markers["2026-08-24"]; !ok {
		t.Error("Monday inside window not marked")
	}
	if _, ok := markers["2026-08-31"]; ok {
		t.Error("Monday outside window marked")
	}
}
