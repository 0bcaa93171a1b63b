// Package transport is the HTTP façade described in spec §4.8: two
// read-only endpoints backed by a *sim.World snapshot, routed with
// chi (grounded on the pack's chi-based airport-lookup service).
package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"elevsim/internal/sim"
)

// NewRouter builds the chi.Router exposing GET /state and GET /stats
// (plus the /stats/daily alias). Unknown paths return 200 with
// {"error":"not found"} per spec §7, not a 404 — chi's NotFound hook
// is rewritten accordingly.
func NewRouter(world *sim.World) chi.Router {
	r := chi.NewRouter()

	r.Get("/state", handleState(world))
	r.Get("/stats", handleStats(world))
	r.Get("/stats/daily", handleStats(world))
	r.NotFound(handleNotFound)

	return r
}

func handleState(world *sim.World) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, world.SnapshotState(time.Now()))
	}
}

func handleStats(world *sim.World) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, world.SnapshotStats())
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Connection", "close")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"error":"not found"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Connection", "close")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
