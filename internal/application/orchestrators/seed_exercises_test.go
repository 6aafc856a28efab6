package orchestrators

import (
	"context"
	"testing"

	exerciseDomain "fittrack/internal/domain/exercise"
)

// mockExerciseSeedStore implements ExerciseStoreForSeed for testing.
type mockExerciseSeedStore struct {
	exercises []exerciseDomain.Exercise
}

// Create implements ExerciseStoreForSeed.
// PRE: value is a catalog exercise
// POST: value is appended with the next ID
func (m *mockExerciseSeedStore) Create(_ context.Context, value exerciseDomain.Exercise) (int64, error) {
	value.ID = int64(len(m.exercises) + 1)
	m.exercises = append(m.exercises, value)
	return value.ID, nil
}

// List implements ExerciseStoreForSeed.
// PRE: none
// POST: returns all created exercises
func (m *mockExerciseSeedStore) List(_ context.Context) ([]exerciseDomain.Exercise, error) {
	return m.exercises, nil
}

// TestExecuteSeedExercises_FreshStore tests the first-run seed.
func TestExecuteSeedExercises_FreshStore(t *testing.T) {
	store := &mockExerciseSeedStore{}

	if err := ExecuteSeedExercises(context.Background(), SeedExercisesDeps{ExerciseStore: store}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.exercises) != len(DefaultCatalog) {
		t.Errorf("created %d exercises, want %d", len(store.exercises), len(DefaultCatalog))
	}
}

// TestExecuteSeedExercises_Idempotent tests that a second run is a no-op.
func TestExecuteSeedExercises_Idempotent(t *testing.T) {
	store := &mockExerciseSeedStore{}
	deps := SeedExercisesDeps{ExerciseStore: store}

	if err := ExecuteSeedExercises(context.Background(), deps); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := ExecuteSeedExercises(context.Background(), deps); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(store.exercises) != len(DefaultCatalog) {
		t.Errorf("exercises = %d after reseed, want %d", len(store.exercises), len(DefaultCatalog))
	}
}

// TestDefaultCatalog_Valid tests that every seeded exercise passes validation.
func TestDefaultCatalog_Valid(t *testing.T) {
	for _, ex := range DefaultCatalog {
		if err := ex.Validate(); err != nil {
			t.Errorf("%s: %v", ex.Name, err)
		}
	}
}
