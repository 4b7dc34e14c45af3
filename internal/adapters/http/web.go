package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"garage/internal/adapters/http/middleware"
	"garage/internal/adapters/http/perf"
	appointmentStore "garage/internal/adapters/storage/appointment"
	mechanicStore "garage/internal/adapters/storage/mechanic"
)

// Stores holds all storage dependencies.
type Stores struct {
	MechanicStore    mechanicStore.Store
	AppointmentStore appointmentStore.Store
}

// loadCSRFKey reads the CSRF secret from GARAGE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("GARAGE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("GARAGE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("GARAGE_ENV") == "production" {
		log.Fatal("GARAGE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set GARAGE_CSRF_KEY for production.")
	return key
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 20

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	srv := &server{
		stores:    s,
		collector: collector,
		staticDir: staticDir,
	}

	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> CSRF -> CORS -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CORS,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}

// server bundles the handler dependencies so nothing lives in package globals.
type server struct {
	stores    *Stores
	collector *perf.Collector
	staticDir string
}
