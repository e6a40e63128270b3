package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ads-firewall/internal/adapter/usecase"
	"ads-firewall/internal/core/port"
)

// ReportSource exposes the outcome of the most recent scan cycle.
type ReportSource interface {
	LastReport() (usecase.Report, bool)
}

// Handler is the read-only operations surface: liveness, Prometheus metrics,
// recent alerts, stored baselines and the last scan report. It never
// triggers upstream calls.
type Handler struct {
	alerts    port.AlertRepository
	baselines port.BaselineReader
	scans     ReportSource
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(alerts port.AlertRepository, baselines port.BaselineReader, scans ReportSource, logger *slog.Logger) *Handler {
	h := &Handler{alerts: alerts, baselines: baselines, scans: scans, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/alerts", h.handleRecentAlerts)
		r.Get("/baselines/{metric}/{resourceID}", h.handleBaseline)
		r.Get("/scans/last", h.handleLastScan)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
