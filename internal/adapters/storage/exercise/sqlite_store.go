package exercise

import (
	"context"
	"database/sql"
	"fmt"

	"fittrack/internal/adapters/storage"
	domain "fittrack/internal/domain/exercise"
)

const exerciseColumns = "id, name, category, description, primary_muscle, secondary_muscles, image_uri"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ExerciseStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Exercise by its ID.
// PRE: id is positive
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Exercise, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+exerciseColumns+" FROM exercises WHERE id = ?", id)
	entity, err := scanExercise(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Exercise{}, fmt.Errorf("exercise not found: %w", err)
	}
	return entity, err
}

// Create inserts a new Exercise and returns its generated ID.
// PRE: entity has been validated
// POST: Row inserted, assigned ID returned
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Exercise) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO exercises (name, category, description, primary_muscle, secondary_muscles, image_uri) VALUES (?, ?, ?, ?, ?, ?)",
		entity.Name, entity.Category, entity.Description, entity.PrimaryMuscle,
		domain.JoinMuscles(entity.SecondaryMuscles), entity.ImageURI,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites an existing Exercise.
// PRE: entity has been validated and entity.ID exists
// POST: Row updated
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Exercise) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE exercises SET name = ?, category = ?, description = ?, primary_muscle = ?, secondary_muscles = ?, image_uri = ? WHERE id = ?",
		entity.Name, entity.Category, entity.Description, entity.PrimaryMuscle,
		domain.JoinMuscles(entity.SecondaryMuscles), entity.ImageURI, entity.ID,
	)
	return err
}

// Delete removes an Exercise. Cascade removes routine entries referencing it.
// PRE: id is positive
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM exercises WHERE id = ?", id)
	return err
}

// List retrieves all Exercises ordered by category then name.
// PRE: none
// POST: Returns all exercises
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.queryExercises(ctx, "SELECT "+exerciseColumns+" FROM exercises ORDER BY category, name")
}

// ListByCategory retrieves Exercises in one category.
// PRE: category is non-empty
// POST: Returns matching exercises ordered by name
func (s *SQLiteStore) ListByCategory(ctx context.Context, category string) ([]domain.Exercise, error) {
	return s.queryExercises(ctx, "SELECT "+exerciseColumns+" FROM exercises WHERE category = ? ORDER BY name", category)
}

func (s *SQLiteStore) queryExercises(ctx context.Context, query string, args ...any) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Exercise
	for rows.Next() {
		entity, err := scanExercise(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanExercise(scan func(dest ...any) error) (domain.Exercise, error) {
	var entity domain.Exercise
	var description, secondary, imageURI sql.NullString
	if err := scan(&entity.ID, &entity.Name, &entity.Category, &description, &entity.PrimaryMuscle, &secondary, &imageURI); err != nil {
		return domain.Exercise{}, err
	}
	entity.Description = description.String
	entity.SecondaryMuscles = domain.SplitMuscles(secondary.String)
	entity.ImageURI = imageURI.String
	return entity, nil
}
