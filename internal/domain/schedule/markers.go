package schedule

import "time"

// DefaultWindowDays is the rolling calendar window length.
const DefaultWindowDays = 28

// AccentColor is the highlight used for today's marker when no routine is
// scheduled on today's weekday.
const AccentColor = "#0a84ff"

// DefaultPalette holds the marker fill colors, indexed by routine name rank.
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#f58231", "#4363d8",
	"#911eb4", "#46b8b0", "#b8860b", "#f032e6",
}

// DateKeyFormat is the ISO date layout used for marker map keys.
const DateKeyFormat = "2006-01-02"

// Marker is a per-calendar-date render style.
type Marker struct {
	Color string // fill color, empty for a rest day
	Today bool   // highlighted border
}

// LegendEntry pairs a routine name with its assigned marker color, for the
// calendar legend.
type LegendEntry struct {
	Name  string
	Color string
}

// Legend returns the distinct routine names that color the calendar, in
// rank order with their palette colors. Only the first routine of each day
// participates; duplicates keep their first occurrence.
// PRE: week has DaysInWeek buckets
// POST: entries are unique by name, ordered by first day of appearance
func Legend(week WeekSchedule, palette []string) []LegendEntry {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	var entries []LegendEntry
	for i, name := range rankFirstRoutines(week) {
		entries = append(entries, LegendEntry{Name: name, Color: palette[i%len(palette)]})
	}
	return entries
}

// BuildMarkers derives the date→style map for a rolling window starting at
// windowStart ("today"). Each date whose weekday has at least one assignment
// is filled with the color of that day's first routine; the color is a pure
// function of the routine name's rank among distinct first-routine names, so
// the same routine gets the same color on every date. windowStart itself is
// always present with a highlighted border, keeping any computed fill and
// falling back to the accent color on a rest day.
// PRE: week has DaysInWeek buckets
// POST: result maps ISO dates to markers; result[windowStart].Today is true
func BuildMarkers(week WeekSchedule, windowStart time.Time, windowDays int, palette []string) map[string]Marker {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	rank := make(map[string]int)
	for i, name := range rankFirstRoutines(week) {
		rank[name] = i
	}

	markers := make(map[string]Marker)
	for i := 0; i < windowDays; i++ {
		date := windowStart.AddDate(0, 0, i)
		bucket := week[int(date.Weekday())]
		first, ok := bucket.First()
		if !ok {
			continue
		}
		// The name always resolves by construction; slot 0 is the
		// documented fallback if it somehow does not.
		slot := 0
		if r, ok := rank[first.Name]; ok {
			slot = r
		}
		markers[date.Format(DateKeyFormat)] = Marker{Color: palette[slot%len(palette)]}
	}

	todayKey := windowStart.Format(DateKeyFormat)
	today := markers[todayKey]
	today.Today = true
	if today.Color == "" {
		today.Color = AccentColor
	}
	markers[todayKey] = today
	return markers
}

// rankFirstRoutines lists the distinct first-routine names across the week,
// in day-of-week order, keeping first occurrences.
func rankFirstRoutines(week WeekSchedule) []string {
	seen := make(map[string]bool)
	var names []string
	for _, bucket := range week {
		first, ok := bucket.First()
		if !ok || seen[first.Name] {
			continue
		}
		seen[first.Name] = true
		names = append(names, first.Name)
	}
	return names
}
