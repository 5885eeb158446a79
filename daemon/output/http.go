package output

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cubestat/cubestat-go/daemon/store"
)

// seriesJSON is one entry of the `GET /metrics` body spec.md §6 describes:
// {metric_name: {current, history}, ...}. History carries bare values,
// oldest first, with no per-sample timestamp — see DESIGN.md's "HTTP JSON
// timestamps" decision.
type seriesJSON struct {
	Current float64   `json:"current"`
	History []float64 `json:"history"`
}

// JSONHandler serves the store as the `{metric_name: {current, history}}`
// document spec.md §6 names, one entry per series the store has ever
// seen, history capped at the store's own ring capacity.
type JSONHandler struct {
	Store *store.Store
}

func (h *JSONHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	names := h.Store.Names()
	body := make(map[string]seriesJSON, len(names))
	for _, name := range names {
		n := h.Store.Len(name)
		history, _ := h.Store.Snapshot(name, n, 0)
		current := 0.0
		if n > 0 {
			current = history[len(history)-1]
		}
		body[name.String()] = seriesJSON{Current: current, History: history}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// NewRouter builds the single chi.Router spec.md §4.9 calls for: one
// `/metrics` route whose handler is whichever of JSONHandler or
// PrometheusCollector's promhttp.Handler the caller wired in, per the
// mutually-exclusive output flags domain.Config.OutputCount enforces.
// Grounded on the teacher's setupChiRouter (middleware stack) and
// setupMetricsRoutes (single GET route), trimmed to what a
// telemetry-only surface needs: no auth, no versioning, no websockets.
func NewRouter(metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Get("/metrics", metrics.ServeHTTP)
	return r
}
