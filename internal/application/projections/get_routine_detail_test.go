package projections

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	exerciseDomain "fittrack/internal/domain/exercise"
	routineDomain "fittrack/internal/domain/routine"
)

type mockDetailRoutineStore struct {
	routine routineDomain.Routine
	err     error
}

func (m *mockDetailRoutineStore) GetByID(_ context.Context, _ int64) (routineDomain.Routine, error) {
	return m.routine, m.err
}

type mockDetailEntryStore struct {
	entries []routineDomain.ExerciseEntry
	err     error
}

func (m *mockDetailEntryStore) ListByRoutineID(_ context.Context, _ int64) ([]routineDomain.ExerciseEntry, error) {
	return m.entries, m.err
}

type mockDetailExerciseStore struct {
	exercises map[int64]exerciseDomain.Exercise
}

func (m *mockDetailExerciseStore) GetByID(_ context.Context, id int64) (exerciseDomain.Exercise, error) {
	ex, ok := m.exercises[id]
	if !ok {
		return exerciseDomain.Exercise{}, sql.ErrNoRows
	}
	return ex, nil
}

// TestQueryGetRoutineDetail_EnrichesEntries verifies entries are joined
// with exercise display fields in position order.
func TestQueryGetRoutineDetail_EnrichesEntries(t *testing.T) {
	deps := GetRoutineDetailDeps{
		RoutineStore: &mockDetailRoutineStore{routine: routineDomain.Routine{ID: 1, Name: "Push Day"}},
		EntryStore: &mockDetailEntryStore{entries: []routineDomain.ExerciseEntry{
			{ID: 11, RoutineID: 1, ExerciseID: 100, OrderNum: 0, Sets: 4},
			{ID: 12, RoutineID: 1, ExerciseID: 200, OrderNum: 1, Sets: 3},
		}},
		ExerciseStore: &mockDetailExerciseStore{exercises: map[int64]exerciseDomain.Exercise{
			100: {ID: 100, Name: "Bench Press", PrimaryMuscle: "chest"},
			200: {ID: 200, Name: "Overhead Press", PrimaryMuscle: "shoulders"},
		}},
	}

	result, err := QueryGetRoutineDetail(context.Background(), 1, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Routine.Name != "Push Day" {
		t.Errorf("routine name = %q, want Push Day", result.Routine.Name)
	}
	if len(result.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(result.Items))
	}
	first := result.Items[0]
	if first.ExerciseName != "Bench Press" || first.PrimaryMuscle != "chest" || first.Sets != 4 {
		t.Errorf("first item = %+v, want enriched Bench Press", first)
	}
}

// TestQueryGetRoutineDetail_SkipsDeletedExercises verifies entries pointing
// at missing exercises are dropped rather than failing the view.
func TestQueryGetRoutineDetail_SkipsDeletedExercises(t *testing.T) {
	deps := GetRoutineDetailDeps{
		RoutineStore: &mockDetailRoutineStore{routine: routineDomain.Routine{ID: 1, Name: "Push Day"}},
		EntryStore: &mockDetailEntryStore{entries: []routineDomain.ExerciseEntry{
			{ID: 11, RoutineID: 1, ExerciseID: 100, OrderNum: 0, Sets: 4},
			{ID: 12, RoutineID: 1, ExerciseID: 999, OrderNum: 1, Sets: 3},
		}},
		ExerciseStore: &mockDetailExerciseStore{exercises: map[int64]exerciseDomain.Exercise{
			100: {ID: 100, Name: "Bench Press", PrimaryMuscle: "chest"},
		}},
	}

	result, err := QueryGetRoutineDetail(context.Background(), 1, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ExerciseID != 100 {
		t.Errorf("items = %+v, want only exercise 100", result.Items)
	}
}

// TestQueryGetRoutineDetail_MissingRoutine verifies the lookup error is
// propagated.
func TestQueryGetRoutineDetail_MissingRoutine(t *testing.T) {
	deps := GetRoutineDetailDeps{
		RoutineStore:  &mockDetailRoutineStore{err: sql.ErrNoRows},
		EntryStore:    &mockDetailEntryStore{},
		ExerciseStore: &mockDetailExerciseStore{},
	}

	if _, err := QueryGetRoutineDetail(context.Background(), 404, deps); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}
