package cli

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"garage/internal/adapters/storage"
	appointmentStore "garage/internal/adapters/storage/appointment"
	mechanicStore "garage/internal/adapters/storage/mechanic"
)

// Stores bundles the store handles a command needs, plus the DB for cleanup.
type Stores struct {
	DB           *sql.DB
	Mechanics    *mechanicStore.SQLiteStore
	Appointments *appointmentStore.SQLiteStore
}

// Close releases the underlying database handle.
func (s *Stores) Close() error {
	return s.DB.Close()
}

// OpenStores opens the workshop database (GARAGE_DB, default garage.db),
// runs migrations, and returns ready store instances.
func OpenStores() (*Stores, error) {
	dbPath := os.Getenv("GARAGE_DB")
	if dbPath == "" {
		dbPath = "garage.db"
	}
	dsn := storage.DSN(dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database %s unreachable: %w", dbPath, err)
	}
	if err := storage.MigrateDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Stores{
		DB:           db,
		Mechanics:    mechanicStore.NewSQLiteStore(db),
		Appointments: appointmentStore.NewSQLiteStore(db),
	}, nil
}
