package api

import (
	"net/http"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /reports/dashboard
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if u := h.identity(r); u != nil {
		userID = u.ID
	}

	dashboard, err := h.reports.Dashboard(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to build dashboard", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// GET /reports/progress
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if u := h.identity(r); u != nil {
		userID = u.ID
	}

	progress, err := h.reports.Progress(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to build progress report", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, progress)
}
