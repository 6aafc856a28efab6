package projections

import (
	"context"
	"sort"

	exerciseDomain "fittrack/internal/domain/exercise"
)

// Catalog grouping modes.
const (
	GroupByCategory = "category"
	GroupByMuscle   = "muscle"
)

// CatalogExerciseStore defines the store interface needed by this projection.
type CatalogExerciseStore interface {
	List(ctx context.Context) ([]exerciseDomain.Exercise, error)
}

// GetExerciseCatalogDeps holds dependencies for the projection.
type GetExerciseCatalogDeps struct {
	ExerciseStore CatalogExerciseStore
}

// CatalogGroup is one section of the exercise picker.
type CatalogGroup struct {
	Label     string
	Exercises []exerciseDomain.Exercise
}

// QueryGetExerciseCatalog groups the exercise library for the picker
// screens: by category or by primary muscle. Groups are sorted by label,
// exercises inside a group keep the store's ordering.
// PRE: groupBy is GroupByCategory or GroupByMuscle
// POST: every exercise appears in exactly one group
func QueryGetExerciseCatalog(ctx context.Context, groupBy string, deps GetExerciseCatalogDeps) ([]CatalogGroup, error) {
	exercises, err := deps.ExerciseStore.List(ctx)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string][]exerciseDomain.Exercise)
	for _, ex := range exercises {
		label := ex.Category
		if groupBy == GroupByMuscle {
			label = ex.PrimaryMuscle
		}
		byLabel[label] = append(byLabel[label], ex)
	}

	var groups []CatalogGroup
	for label, exs := range byLabel {
		groups = append(groups, CatalogGroup{Label: label, Exercises: exs})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Label < groups[j].Label })
	return groups, nil
}
