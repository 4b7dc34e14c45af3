package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	web "garage/internal/adapters/http"
	"garage/internal/adapters/http/perf"
	"garage/internal/adapters/storage"
	appointmentStore "garage/internal/adapters/storage/appointment"
	mechanicStore "garage/internal/adapters/storage/mechanic"
	"garage/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("GARAGE_DB", "garage.db")
	dsn := storage.DSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	mechStore := mechanicStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		MechanicStore:    mechStore,
		AppointmentStore: appointmentStore.NewSQLiteStore(timedDB),
	}

	// Seed default mechanics if the roster is empty
	seedDeps := orchestrators.SeedMechanicsDeps{MechanicStore: mechStore}
	if err := orchestrators.ExecuteSeedMechanics(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed mechanics: %v", err)
	}

	// Create HTTP handler with middleware (pass collector for timing + dashboard)
	staticDir := envOrDefault("GARAGE_STATIC_DIR", "static")
	mux := web.NewMux(staticDir, stores, collector)

	// Start server
	addr := envOrDefault("GARAGE_ADDR", ":8080")
	log.Printf("Garage %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("GARAGE_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
