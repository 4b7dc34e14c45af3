package storage

import (
	"database/sql"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expectedTables is the sorted list of tables after all migrations.
var expectedTables = []string{
	"appointments",
	"mechanics",
	"schema_version",
}

// TestMigrateDB_FreshDatabase verifies all tables exist after migrating an empty db.
func TestMigrateDB_FreshDatabase(t *testing.T) {
	db := openTestDB(t)
	if err := MigrateDB(db); err != nil {
		t.Fatalf("MigrateDB: %v", err)
	}

	got := getTableNames(t, db)
	if len(got) != len(expectedTables) {
		t.Fatalf("table count = %d (%v), want %d", len(got), got, len(expectedTables))
	}
	for i, name := range expectedTables {
		if got[i] != name {
			t.Errorf("table[%d] = %q, want %q", i, got[i], name)
		}
	}

	var version int
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version != LatestSchemaVersion() {
		t.Errorf("schema version = %d, want %d", version, LatestSchemaVersion())
	}
}

// TestMigrateDB_Idempotent verifies migrating twice is a no-op.
func TestMigrateDB_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := MigrateDB(db); err != nil {
		t.Fatalf("first MigrateDB: %v", err)
	}
	if err := MigrateDB(db); err != nil {
		t.Fatalf("second MigrateDB: %v", err)
	}

	var rows int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rows); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if rows != LatestSchemaVersion() {
		t.Errorf("schema_version rows = %d, want %d", rows, LatestSchemaVersion())
	}
}

// TestMigrateDB_BookingIndexes verifies the hot-path indexes exist.
func TestMigrateDB_BookingIndexes(t *testing.T) {
	db := openTestDB(t)
	if err := MigrateDB(db); err != nil {
		t.Fatalf("MigrateDB: %v", err)
	}

	for _, idx := range []string{"idx_appointments_mechanic_date", "idx_appointments_phone_date"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name = ?", idx).Scan(&name)
		if err != nil {
			t.Errorf("index %s missing: %v", idx, err)
		}
	}
}

// TestDSN verifies the connection string carries the concurrency settings
// every binary relies on. Immediate transactions make a losing concurrent
// booking wait for the lock rather than fail, so the capacity check still
// runs and reports the friendly message.
func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/garage.db")
	if !strings.HasPrefix(dsn, "/tmp/garage.db?") {
		t.Fatalf("dsn = %q, want path prefix", dsn)
	}
	for _, param := range []string{
		"_txlock=immediate",
		"_pragma=journal_mode(WAL)",
		"_pragma=busy_timeout(5000)",
		"_pragma=synchronous(NORMAL)",
	} {
		if !strings.Contains(dsn, param) {
			t.Errorf("dsn missing %q: %q", param, dsn)
		}
	}

	db, err := sql.Open("sqlite", DSN(filepath.Join(t.TempDir(), "dsn.db")))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

// TestInitDB verifies the base schema creates both domain tables.
func TestInitDB(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}

	got := getTableNames(t, db)
	want := []string{"appointments", "mechanics"}
	if len(got) != len(want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
}
