package orchestrators

import (
	"context"
	"log/slog"

	exerciseDomain "fittrack/internal/domain/exercise"
)

// ExerciseStoreForSeed defines the store interface needed by SeedExercises.
type ExerciseStoreForSeed interface {
	Create(ctx context.Context, value exerciseDomain.Exercise) (int64, error)
	List(ctx context.Context) ([]exerciseDomain.Exercise, error)
}

// SeedExercisesDeps holds dependencies for SeedExercises.
type SeedExercisesDeps struct {
	ExerciseStore ExerciseStoreForSeed
}

// DefaultCatalog is the starter exercise library created on first run.
var DefaultCatalog = []exerciseDomain.Exercise{
	{Name: "Squat", Category: "strength", PrimaryMuscle: "quadriceps", SecondaryMuscles: []string{"glutes", "hamstrings"}},
	{Name: "Deadlift", Category: "strength", PrimaryMuscle: "back", SecondaryMuscles: []string{"glutes", "hamstrings"}},
	{Name: "Bench Press", Category: "strength", PrimaryMuscle: "chest", SecondaryMuscles: []string{"triceps", "shoulders"}},
	{Name: "Overhead Press", Category: "strength", PrimaryMuscle: "shoulders", SecondaryMuscles: []string{"triceps"}},
	{Name: "Barbell Row", Category: "strength", PrimaryMuscle: "back", SecondaryMuscles: []string{"biceps"}},
	{Name: "Pull-Up", Category: "strength", PrimaryMuscle: "back", SecondaryMuscles: []string{"biceps", "forearms"}},
	{Name: "Dip", Category: "strength", PrimaryMuscle: "triceps", SecondaryMuscles: []string{"chest"}},
	{Name: "Lunge", Category: "strength", PrimaryMuscle: "quadriceps", SecondaryMuscles: []string{"glutes"}},
	{Name: "Bicep Curl", Category: "strength", PrimaryMuscle: "biceps"},
	{Name: "Plank", Category: "core", PrimaryMuscle: "abdominals"},
	{Name: "Crunch", Category: "core", PrimaryMuscle: "abdominals"},
	{Name: "Russian Twist", Category: "core", PrimaryMuscle: "obliques"},
	{Name: "Running", Category: "cardio", PrimaryMuscle: "legs"},
	{Name: "Cycling", Category: "cardio", PrimaryMuscle: "legs"},
	{Name: "Jump Rope", Category: "cardio", PrimaryMuscle: "calves"},
	{Name: "Rowing Machine", Category: "cardio", PrimaryMuscle: "back", SecondaryMuscles: []string{"legs"}},
	{Name: "Hamstring Stretch", Category: "stretching", PrimaryMuscle: "hamstrings"},
	{Name: "Shoulder Stretch", Category: "stretching", PrimaryMuscle: "shoulders"},
}

// ExecuteSeedExercises creates the default exercise library if none exist.
func ExecuteSeedExercises(ctx context.Context, deps SeedExercisesDeps) error {
	existing, err := deps.ExerciseStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	for _, ex := range DefaultCatalog {
		if _, err := deps.ExerciseStore.Create(ctx, ex); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "exercises_seeded", "count", len(DefaultCatalog))
	return nil
}
