// Package httptransport wires the HTTP surface: middleware chain, health
// and metrics endpoints, and the compliance routes. Business logic stays in
// the services; this layer only routes.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"veripay/internal/compliance/handler"
	"veripay/internal/platform/metrics"
	"veripay/internal/platform/middleware"
)

// NewRouter assembles the full router. The compliance handler owns its own
// route group and auth requirements.
func NewRouter(compliance *handler.Handler, logger *slog.Logger, httpMetrics *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(httpMetrics))

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	compliance.Register(r)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
