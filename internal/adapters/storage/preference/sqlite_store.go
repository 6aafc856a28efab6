package preference

import (
	"context"
	"database/sql"
	"fmt"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/measurement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new PreferenceStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByType retrieves the preference for one measurement type.
// PRE: measurementType is non-empty
// POST: Returns the entity or a wrapped sql.ErrNoRows if absent
func (s *SQLiteStore) GetByType(ctx context.Context, measurementType string) (domain.Preference, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, type, is_tracking, custom_name, unit FROM measurement_preferences WHERE type = ?",
		measurementType,
	)
	entity, err := scanPreference(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Preference{}, fmt.Errorf("preference not found: %w", err)
	}
	return entity, err
}

// Upsert inserts or updates the preference for a type.
// PRE: entity.Type is non-empty, entity.Unit is a recognised unit
// POST: Exactly one row exists for the type with the given settings
func (s *SQLiteStore) Upsert(ctx context.Context, entity domain.Preference) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO measurement_preferences (type, is_tracking, custom_name, unit) VALUES (?, ?, ?, ?)
		ON CONFLICT(type) DO UPDATE SET is_tracking=excluded.is_tracking, custom_name=excluded.custom_name, unit=excluded.unit`,
		entity.Type, boolToInt(entity.IsTracking), entity.CustomName, entity.Unit,
	)
	return err
}

// List retrieves all preferences.
// PRE: none
// POST: Returns preferences ordered by type
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Preference, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, type, is_tracking, custom_name, unit FROM measurement_preferences ORDER BY type")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Preference
	for rows.Next() {
		entity, err := scanPreference(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanPreference(scan func(dest ...any) error) (domain.Preference, error) {
	var entity domain.Preference
	var tracking int
	var customName sql.NullString
	if err := scan(&entity.ID, &entity.Type, &tracking, &customName, &entity.Unit); err != nil {
		return domain.Preference{}, err
	}
	entity.IsTracking = tracking != 0
	entity.CustomName = customName.String
	return entity, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
