package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is a single schema change applied exactly once, in order.
type migration struct {
	version int
	apply   func(db *sql.DB) error
}

var migrations = []migration{
	{
		version: 1,
		apply: func(db *sql.DB) error {
			_, err := db.Exec(baseSchema)
			return err
		},
	},
	{
		// Indexes backing the two hot booking checks: per-mechanic capacity
		// and per-client duplicate detection.
		version: 2,
		apply: func(db *sql.DB) error {
			_, err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_appointments_mechanic_date
					ON appointments(mechanic_id, appointment_date);
				CREATE INDEX IF NOT EXISTS idx_appointments_phone_date
					ON appointments(client_phone, appointment_date);
			`)
			return err
		},
	},
}

// LatestSchemaVersion returns the schema version the binary expects.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// MigrateDB brings the database schema up to the latest version.
// PRE: db is a valid database connection
// POST: schema_version records the latest applied version
// INVARIANT: migrations are applied in ascending order, each at most once
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)"); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.version, err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		slog.Info("migration_event", "event", "migration_applied", "version", m.version)
	}
	return nil
}
