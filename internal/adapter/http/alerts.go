package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"ads-firewall/internal/core/domain"
)

const (
	defaultAlertLimit = 50
	maxAlertLimit     = 500
)

// handleRecentAlerts returns the newest alerts. The optional `limit` query
// parameter defaults to 50 and is capped at 500. Invalid values produce
// HTTP 400.
func (h *Handler) handleRecentAlerts(w http.ResponseWriter, r *http.Request) {
	limit := defaultAlertLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxAlertLimit)
	}

	alerts, err := h.alerts.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("recent alerts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	h.writeJSON(w, http.StatusOK, alerts)
}
