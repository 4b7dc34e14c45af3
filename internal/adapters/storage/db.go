package storage

import (
	"database/sql"
	"fmt"
)

// DSN builds the sqlite connection string for dbPath. Write transactions
// begin immediate so the duplicate and capacity checks inside a booking
// hold the write lock from the first statement; combined with the busy
// timeout, a concurrent booking waits instead of failing on SQLITE_BUSY.
func DSN(dbPath string) string {
	return dbPath + "?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// baseSchema is the workshop database layout. Appointments keep
// a bare mechanic_id column without a foreign key: dangling references are
// tolerated at read time and rendered with fallback values.
const baseSchema = `
CREATE TABLE IF NOT EXISTS mechanics (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100) NOT NULL,
	specialization VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS appointments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client_name VARCHAR(100) NOT NULL,
	client_address TEXT NOT NULL,
	client_phone VARCHAR(20) NOT NULL,
	car_license VARCHAR(50) NOT NULL,
	car_engine VARCHAR(50) NOT NULL,
	appointment_date DATE NOT NULL,
	mechanic_id INTEGER NOT NULL,
	status VARCHAR(20) DEFAULT 'confirmed',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
