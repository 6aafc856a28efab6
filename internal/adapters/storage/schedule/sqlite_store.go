package schedule

import (
	"context"
	"time"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/schedule"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ScheduleStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListAssignments retrieves every assignment joined with its routine's name
// and exercise count, ordered by day then assignment creation time. The
// ordering is what the week aggregator relies on.
// PRE: none
// POST: Returns all assignments, day_of_week then created_at ascending
func (s *SQLiteStore) ListAssignments(ctx context.Context) ([]domain.AssignmentDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ws.id, ws.day_of_week, ws.routine_id, ws.created_at, r.name,
			(SELECT COUNT(*) FROM routine_exercises re WHERE re.routine_id = ws.routine_id)
		FROM weekly_schedule ws
		JOIN routines r ON r.id = ws.routine_id
		ORDER BY ws.day_of_week, ws.created_at, ws.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.AssignmentDetail
	for rows.Next() {
		var entity domain.AssignmentDetail
		var createdAt int64
		if err := rows.Scan(&entity.ID, &entity.DayOfWeek, &entity.RoutineID, &createdAt, &entity.RoutineName, &entity.ExerciseCount); err != nil {
			return nil, err
		}
		entity.CreatedAt = time.UnixMilli(createdAt)
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Toggle removes the (day, routine) pair if present, otherwise inserts it
// with the given timestamp. Toggling twice restores the original state.
// PRE: day is in 0..6, routineID references an existing routine
// POST: Exactly one row inserted or deleted; inserted reports which
func (s *SQLiteStore) Toggle(ctx context.Context, day int, routineID int64, now time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM weekly_schedule WHERE day_of_week = ? AND routine_id = ?",
		day, routineID,
	)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO weekly_schedule (day_of_week, routine_id, created_at) VALUES (?, ?, ?)",
		day, routineID, now.UnixMilli(),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClearDay deletes all assignments for one day.
// PRE: day is in 0..6
// POST: No assignments remain for the day; succeeds even if none existed
func (s *SQLiteStore) ClearDay(ctx context.Context, day int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM weekly_schedule WHERE day_of_week = ?", day)
	return err
}

// ClearAll deletes every assignment row.
// PRE: none
// POST: weekly_schedule is empty
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM weekly_schedule")
	return err
}
