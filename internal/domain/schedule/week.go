package schedule

// RoutineInfo is the per-assignment view held by a day bucket.
type RoutineInfo struct {
	RoutineID     int64
	Name          string
	ExerciseCount int
}

// DayBucket is the per-weekday collection of assignments in a derived week
// schedule. Routines keep the order their assignments were created in.
type DayBucket struct {
	Day      int
	Name     string
	Routines []RoutineInfo
}

// First returns the bucket's first assigned routine, if any. Calendar
// coloring is first-assignment-wins: later assignments on the same day do
// not affect the marker.
func (b DayBucket) First() (RoutineInfo, bool) {
	if len(b.Routines) == 0 {
		return RoutineInfo{}, false
	}
	return b.Routines[0], true
}

// WeekSchedule is the derived weekly view: exactly DaysInWeek buckets in
// Sunday→Saturday order. It is recomputed from the store on every load and
// carries no identity of its own.
type WeekSchedule []DayBucket

// AggregateWeek groups flat assignment rows into seven day buckets.
// Rows are expected pre-sorted by creation time within each day (the store
// orders them); their relative order is preserved. Days without assignments
// get an empty bucket rather than being dropped.
// PRE: every row's DayOfWeek is in 0..6
// POST: result has exactly DaysInWeek buckets, Sunday first
func AggregateWeek(rows []AssignmentDetail, dayNames [DaysInWeek]string) WeekSchedule {
	week := make(WeekSchedule, DaysInWeek)
	for day := range week {
		week[day] = DayBucket{Day: day, Name: dayNames[day]}
	}
	for _, row := range rows {
		info := RoutineInfo{
			RoutineID:     row.RoutineID,
			Name:          row.RoutineName,
			ExerciseCount: row.ExerciseCount,
		}
		week[row.DayOfWeek].Routines = append(week[row.DayOfWeek].Routines, info)
	}
	return week
}
