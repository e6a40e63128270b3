package httpadapter

import "net/http"

// handleLastScan returns the report of the last completed scan cycle, or
// HTTP 204 No Content before the first cycle finishes.
func (h *Handler) handleLastScan(w http.ResponseWriter, _ *http.Request) {
	rep, ok := h.scans.LastReport()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}
