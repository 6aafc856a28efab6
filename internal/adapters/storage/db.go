// Package storage holds the SQLite schema, migrations, and the shared
// database interface used by all entity stores.
package storage

import (
	"database/sql"
	"fmt"
)

// schemaBase is the initial schema (version 1). Later changes are applied as
// migrations; never edit a released migration.
const schemaBase = `
CREATE TABLE IF NOT EXISTS routines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS exercises (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT,
	primary_muscle TEXT NOT NULL,
	secondary_muscles TEXT,
	image_uri TEXT
);

CREATE TABLE IF NOT EXISTS routine_exercises (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	routine_id INTEGER NOT NULL,
	exercise_id INTEGER NOT NULL,
	order_num INTEGER NOT NULL,
	sets INTEGER NOT NULL,
	FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE,
	FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS weekly_schedule (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
	routine_id INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	UNIQUE (day_of_week, routine_id),
	FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS measurements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	value REAL NOT NULL,
	date INTEGER NOT NULL,
	unit TEXT NOT NULL,
	custom_name TEXT
);

CREATE TABLE IF NOT EXISTS measurement_preferences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL UNIQUE,
	is_tracking INTEGER NOT NULL DEFAULT 1,
	custom_name TEXT,
	unit TEXT NOT NULL DEFAULT 'kg'
);

CREATE INDEX IF NOT EXISTS idx_routine_exercises_routine ON routine_exercises(routine_id, order_num);
CREATE INDEX IF NOT EXISTS idx_weekly_schedule_day ON weekly_schedule(day_of_week, created_at);
CREATE INDEX IF NOT EXISTS idx_measurements_type_date ON measurements(type, date);
`

// schemaSessions adds workout session history (version 2).
const schemaSessions = `
CREATE TABLE IF NOT EXISTS workout_sessions (
	id TEXT PRIMARY KEY,
	routine_id INTEGER NOT NULL,
	started_at INTEGER NOT NULL,
	completed_at INTEGER,
	notes TEXT,
	FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workout_sessions_started ON workout_sessions(started_at);
`

// configureConnection enables the pragmas every connection relies on.
// PRE: db is a valid database connection
// POST: WAL mode and foreign key enforcement are active
func configureConnection(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}
