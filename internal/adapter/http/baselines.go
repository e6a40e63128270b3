package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
)

// handleBaseline returns one stored baseline. Unknown metrics produce
// HTTP 400 and missing baselines HTTP 404.
func (h *Handler) handleBaseline(w http.ResponseWriter, r *http.Request) {
	metric := domain.Metric(chi.URLParam(r, "metric"))
	resourceID := chi.URLParam(r, "resourceID")
	if _, ok := domain.BaselineSources[metric]; !ok {
		http.Error(w, "unknown metric", http.StatusBadRequest)
		return
	}

	b, err := h.baselines.Lookup(r.Context(), metric, resourceID)
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("baseline lookup error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}
