package routine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/routine"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new RoutineStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Routine by its ID.
// PRE: id is positive
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Routine, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, description, created_at FROM routines WHERE id = ?", id)
	entity, err := scanRoutine(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Routine{}, fmt.Errorf("routine not found: %w", err)
	}
	return entity, err
}

// Create inserts a new Routine and returns its generated ID.
// PRE: entity has been validated
// POST: Row inserted, assigned ID returned
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Routine) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO routines (name, description, created_at) VALUES (?, ?, ?)",
		entity.Name, entity.Description, entity.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites an existing Routine's name and description.
// PRE: entity has been validated and entity.ID exists
// POST: Row updated; created_at is never changed
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Routine) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE routines SET name = ?, description = ? WHERE id = ?",
		entity.Name, entity.Description, entity.ID,
	)
	return err
}

// Delete removes a Routine. Foreign key cascade removes its exercise entries
// and any weekly schedule assignments referencing it.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id)
	return err
}

// List retrieves all Routines ordered by creation time.
// PRE: none
// POST: Returns all routines, oldest first
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Routine, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, description, created_at FROM routines ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Routine
	for rows.Next() {
		entity, err := scanRoutine(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanRoutine(scan func(dest ...any) error) (domain.Routine, error) {
	var entity domain.Routine
	var description sql.NullString
	var createdAt int64
	if err := scan(&entity.ID, &entity.Name, &description, &createdAt); err != nil {
		return domain.Routine{}, err
	}
	entity.Description = description.String
	entity.CreatedAt = time.UnixMilli(createdAt)
	return entity, nil
}
