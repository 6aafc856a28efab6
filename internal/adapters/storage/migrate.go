package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is one schema change. Migrations run in order inside a
// transaction each; the applied version is recorded in schema_version.
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{
		version: 1,
		name:    "base schema",
		apply: func(tx *sql.Tx) error {
			_, err := tx.Exec(schemaBase)
			return err
		},
	},
	{
		version: 2,
		name:    "workout sessions",
		apply: func(tx *sql.Tx) error {
			_, err := tx.Exec(schemaSessions)
			return err
		},
	},
}

// LatestSchemaVersion returns the version the schema reaches after all
// migrations apply.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// SchemaVersion returns the currently applied schema version, 0 for a fresh
// database.
// PRE: db is a valid database connection
// POST: returns the highest applied version
func SchemaVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)"); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}
	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

// MigrateDB brings the database schema up to the latest version.
// PRE: db is a valid database connection; dbPath identifies it for logging
// POST: all pending migrations applied, each in its own transaction
func MigrateDB(db *sql.DB, dbPath string) error {
	if err := configureConnection(db); err != nil {
		return err
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
		slog.Info("schema_migrated", "db", dbPath, "version", m.version, "name", m.name)
	}

	return nil
}
