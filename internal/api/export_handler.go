package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
)

// ── Request / Response types ────────────────────────────────────────────────

type HistoryResponse struct {
	Results []attempt.Result `json:"results"`
}

type ExportData struct {
	Version    string           `json:"version"`
	ExportedAt string           `json:"exported_at"`
	Results    []attempt.Result `json:"results"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /history
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if h.handleStoreError(w, err, "history") {
		return
	}
	if results == nil {
		results = []attempt.Result{}
	}
	respondJSON(w, http.StatusOK, HistoryResponse{Results: results})
}

// GET /export
func (h *Handler) exportHistory(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if h.handleStoreError(w, err, "history") {
		return
	}
	if results == nil {
		results = []attempt.Result{}
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Results:    results,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=capacitacion-export.json")
	json.NewEncoder(w).Encode(exportData)
}
