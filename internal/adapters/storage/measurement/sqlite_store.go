package measurement

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/measurement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new MeasurementStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create inserts a new Measurement and returns its generated ID.
// PRE: entity has been validated and its value already converted to the
// stored unit (unit and value are mutually consistent)
// POST: Row inserted, assigned ID returned
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Measurement) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO measurements (type, value, date, unit, custom_name) VALUES (?, ?, ?, ?, ?)",
		entity.Type, entity.Value, entity.Date.UnixMilli(), entity.Unit, entity.CustomName,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes a Measurement.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM measurements WHERE id = ?", id)
	return err
}

// List retrieves measurements of one type, oldest first.
// PRE: filter.Type is non-empty
// POST: Returns matching measurements ordered by date then id
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Measurement, error) {
	query := "SELECT id, type, value, date, unit, custom_name FROM measurements WHERE type = ?"
	args := []any{filter.Type}
	if !filter.Since.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.Since.UnixMilli())
	}
	query += " ORDER BY date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Measurement
	for rows.Next() {
		entity, err := scanMeasurement(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Latest retrieves the most recent measurement of one type.
// PRE: measurementType is non-empty
// POST: Returns the newest entity or an error if none exists
func (s *SQLiteStore) Latest(ctx context.Context, measurementType string) (domain.Measurement, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, type, value, date, unit, custom_name FROM measurements WHERE type = ? ORDER BY date DESC, id DESC LIMIT 1",
		measurementType,
	)
	entity, err := scanMeasurement(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Measurement{}, fmt.Errorf("no measurements of type %q: %w", measurementType, err)
	}
	return entity, err
}

func scanMeasurement(scan func(dest ...any) error) (domain.Measurement, error) {
	var entity domain.Measurement
	var date int64
	var customName sql.NullString
	if err := scan(&entity.ID, &entity.Type, &entity.Value, &date, &entity.Unit, &customName); err != nil {
		return domain.Measurement{}, err
	}
	entity.Date = time.UnixMilli(date)
	entity.CustomName = customName.String
	return entity, nil
}
