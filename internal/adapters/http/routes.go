package web

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// registerRoutes attaches all handlers to the mux.
func (s *server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/backend/api/", s.handleAPI)
	mux.HandleFunc("/services", s.handleServices)
	mux.HandleFunc("/", s.handleStatic)
}

// handleAPI dispatches /backend/api/<endpoint> requests. A trailing ".php"
// on the endpoint name is accepted and ignored so older front-end builds
// keep working.
func (s *server) handleAPI(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/backend/api/")
	name = strings.TrimSuffix(name, ".php")

	switch name {
	case "book_appointment":
		s.handleBookAppointment(w, r)
	case "get_mechanics":
		s.handleGetMechanics(w, r)
	case "get_all_mechanics":
		s.handleGetAllMechanics(w, r)
	case "get_appointments":
		s.handleGetAppointments(w, r)
	case "update_appointment":
		s.handleUpdateAppointment(w, r)
	case "add_mechanic":
		s.handleAddMechanic(w, r)
	case "update_mechanic":
		s.handleUpdateMechanic(w, r)
	case "perf":
		s.handlePerfSnapshot(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "API endpoint not found: " + name,
		})
	}
}

// handlePerfSnapshot returns the last 15 minutes of request/query timings.
func (s *server) handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.collector == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Performance collection is disabled",
		})
		return
	}
	report := s.collector.Snapshot(time.Now().Add(-15*time.Minute), 10)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  report,
	})
}

// handleServices renders static/services.md as a standalone info page.
func (s *server) handleServices(w http.ResponseWriter, r *http.Request) {
	md, err := os.ReadFile(filepath.Join(s.staticDir, "services.md"))
	if err != nil {
		http.Error(w, "services page unavailable", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert(md, &buf); err != nil {
		http.Error(w, "services page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Our Services</title><link rel="stylesheet" href="/static/style.css"></head>
<body><main class="services">%s</main></body>
</html>`, buf.String())
}

// handleStatic serves files from the static directory, falling back to
// index.html so client-side routes resolve.
func (s *server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clean := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if clean == "." || strings.HasPrefix(clean, "..") {
		clean = "index.html"
	}

	full := filepath.Join(s.staticDir, clean)
	if info, err := os.Stat(full); err != nil || info.IsDir() {
		full = filepath.Join(s.staticDir, "index.html")
	}
	http.ServeFile(w, r, full)
}
