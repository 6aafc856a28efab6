package routineexercise_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"fittrack/internal/adapters/storage"
	entryStore "fittrack/internal/adapters/storage/routineexercise"
	routineDomain "fittrack/internal/domain/routine"
)

func openStoreDB(t *testing.T) *sql.DB {
	t.Helper()
	// Foreign keys via DSN so every pooled connection enforces them.
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db, ":memory:"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRoutine(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO routines (name, created_at) VALUES (?, ?)", name, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("seed routine %q: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

func seedExercise(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO exercises (name, category, primary_muscle) VALUES (?, 'strength', 'chest')", name)
	if err != nil {
		t.Fatalf("seed exercise %q: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// TestReplaceForRoutine_DenseOrder verifies the replacement writes slice
// positions as order_num regardless of what the entries carried.
func TestReplaceForRoutine_DenseOrder(t *testing.T) {
	db := openStoreDB(t)
	store := entryStore.NewSQLiteStore(db)
	ctx := context.Background()
	routine := seedRoutine(t, db, "Push")
	bench := seedExercise(t, db, "Bench Press")
	dips := seedExercise(t, db, "Dips")

	entries := []routineDomain.ExerciseEntry{
		{ExerciseID: bench, OrderNum: 9, Sets: 3},
		{ExerciseID: dips, OrderNum: 4, Sets: 2},
	}
	if err := store.ReplaceForRoutine(ctx, routine, entries); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := store.ListByRoutineID(ctx, routine)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	for i, e := range got {
		if e.OrderNum != i {
			t.Errorf("entry %d order_num = %d, want %d", i, e.OrderNum, i)
		}
	}
	if got[0].ExerciseID != bench || got[1].ExerciseID != dips {
		t.Errorf("exercise order = %d, %d, want bench then dips", got[0].ExerciseID, got[1].ExerciseID)
	}
}

// TestReplaceForRoutine_Overwrite verifies a second replacement fully
// supersedes the first, including shrinking the list.
func TestReplaceForRoutine_Overwrite(t *testing.T) {
	db := openStoreDB(t)
	store := entryStore.NewSQLiteStore(db)
	ctx := context.Background()
	routine := seedRoutine(t, db, "Push")
	bench := seedExercise(t, db, "Bench Press")
	dips := seedExercise(t, db, "Dips")

	first := []routineDomain.ExerciseEntry{
		{ExerciseID: bench, Sets: 3},
		{ExerciseID: dips, Sets: 2},
	}
	if err := store.ReplaceForRoutine(ctx, routine, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second := []routineDomain.ExerciseEntry{{ExerciseID: dips, Sets: 5}}
	if err := store.ReplaceForRoutine(ctx, routine, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := store.ListByRoutineID(ctx, routine)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0].ExerciseID != dips || got[0].Sets != 5 || got[0].OrderNum != 0 {
		t.Errorf("entry = %+v, want dips with 5 sets at position 0", got[0])
	}
}

// TestReplaceForRoutine_RollbackOnFailure verifies a mid-replacement failure
// leaves the previous list untouched.
func TestReplaceForRoutine_RollbackOnFailure(t *testing.T) {
	db := openStoreDB(t)
	store := entryStore.NewSQLiteStore(db)
	ctx := context.Background()
	routine := seedRoutine(t, db, "Push")
	bench := seedExercise(t, db, "Bench Press")

	if err := store.ReplaceForRoutine(ctx, routine, []routineDomain.ExerciseEntry{{ExerciseID: bench, Sets: 3}}); err != nil {
		t.Fatalf("initial replace: %v", err)
	}

	// Second entry violates the exercises foreign key.
	bad := []routineDomain.ExerciseEntry{
		{ExerciseID: bench, Sets: 4},
		{ExerciseID: 9999, Sets: 2},
	}
	if err := store.ReplaceForRoutine(ctx, routine, bad); err == nil {
		t.Fatal("replace with missing exercise succeeded, want error")
	}

	got, err := store.ListByRoutineID(ctx, routine)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ExerciseID != bench || got[0].Sets != 3 {
		t.Errorf("entries after failed replace = %+v, want the original single bench entry", got)
	}
}

// TestDeleteForRoutine verifies entry removal is scoped to one routine.
func TestDeleteForRoutine(t *testing.T) {
	db := openStoreDB(t)
	store := entryStore.NewSQLiteStore(db)
	ctx := context.Background()
	push := seedRoutine(t, db, "Push")
	pull := seedRoutine(t, db, "Pull")
	bench := seedExercise(t, db, "Bench Press")

	if err := store.ReplaceForRoutine(ctx, push, []routineDomain.ExerciseEntry{{ExerciseID: bench, Sets: 3}}); err != nil {
		t.Fatalf("seed push entries: %v", err)
	}
	if err := store.ReplaceForRoutine(ctx, pull, []routineDomain.ExerciseEntry{{ExerciseID: bench, Sets: 2}}); err != nil {
		t.Fatalf("seed pull entries: %v", err)
	}

	if err := store.DeleteForRoutine(ctx, push); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gotPush, err := store.ListByRoutineID(ctx, push)
	if err != nil {
		t.Fatalf("list push: %v", err)
	}
	if len(gotPush) != 0 {
		t.Errorf("push entries = %d, want 0", len(gotPush))
	}
	gotPull, err := store.ListByRoutineID(ctx, pull)
	if err != nil {
		t.Fatalf("list pull: %v", err)
	}
	if len(gotPull) != 1 {
		t.Errorf("pull entries = %d, want 1", len(gotPull))
	}
}
