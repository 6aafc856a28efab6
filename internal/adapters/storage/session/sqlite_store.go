package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/session"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SessionStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, routine_id, started_at, completed_at, notes FROM workout_sessions WHERE id = ?", id)
	entity, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("session not found: %w", err)
	}
	return entity, err
}

// Create inserts a new in-progress Session.
// PRE: entity has been validated
// POST: Row inserted with NULL completed_at
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO workout_sessions (id, routine_id, started_at, notes) VALUES (?, ?, ?, ?)",
		entity.ID, entity.RoutineID, entity.StartedAt.UnixMilli(), entity.Notes,
	)
	return err
}

// Complete records a session's completion time and notes.
// PRE: entity.Completed() is true
// POST: Row updated with completed_at and notes
func (s *SQLiteStore) Complete(ctx context.Context, entity domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE workout_sessions SET completed_at = ?, notes = ? WHERE id = ?",
		entity.CompletedAt.UnixMilli(), entity.Notes, entity.ID,
	)
	return err
}

// ListRecent retrieves the most recently started sessions.
// PRE: limit > 0
// POST: Returns up to limit sessions, newest first
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, routine_id, started_at, completed_at, notes FROM workout_sessions ORDER BY started_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanSession(scan func(dest ...any) error) (domain.Session, error) {
	var entity domain.Session
	var startedAt int64
	var completedAt sql.NullInt64
	var notes sql.NullString
	if err := scan(&entity.ID, &entity.RoutineID, &startedAt, &completedAt, &notes); err != nil {
		return domain.Session{}, err
	}
	entity.StartedAt = time.UnixMilli(startedAt)
	if completedAt.Valid {
		entity.CompletedAt = time.UnixMilli(completedAt.Int64)
	}
	entity.Notes = notes.String
	return entity, nil
}
