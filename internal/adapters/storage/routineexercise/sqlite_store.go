package routineexercise

import (
	"context"
	"fmt"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/routine"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new RoutineExerciseStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListByRoutineID retrieves a routine's exercise entries in position order.
// PRE: routineID is positive
// POST: Returns entries ordered by order_num
func (s *SQLiteStore) ListByRoutineID(ctx context.Context, routineID int64) ([]domain.ExerciseEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, routine_id, exercise_id, order_num, sets FROM routine_exercises WHERE routine_id = ? ORDER BY order_num",
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ExerciseEntry
	for rows.Next() {
		var entity domain.ExerciseEntry
		if err := rows.Scan(&entity.ID, &entity.RoutineID, &entity.ExerciseID, &entity.OrderNum, &entity.Sets); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ReplaceForRoutine swaps a routine's entire exercise list in one
// transaction: the old rows are deleted and the new entries inserted with
// their slice position as order_num, so the dense 0..N-1 sequence holds. Any
// failure rolls the whole replacement back, leaving the previous list intact.
// PRE: routineID is positive, entries have been validated
// POST: Routine's entries match the given list, or nothing changed
func (s *SQLiteStore) ReplaceForRoutine(ctx context.Context, routineID int64, entries []domain.ExerciseEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", routineID); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO routine_exercises (routine_id, exercise_id, order_num, sets) VALUES (?, ?, ?, ?)",
			routineID, entry.ExerciseID, i, entry.Sets,
		); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// DeleteForRoutine removes all of a routine's entries.
// PRE: routineID is positive
// POST: No entries remain for the routine
func (s *SQLiteStore) DeleteForRoutine(ctx context.Context, routineID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", routineID)
	return err
}
