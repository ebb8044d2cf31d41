// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/auth"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/reports"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/service"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	engine   *service.ExamService
	sessions *auth.Service
	tokens   *auth.TokenIssuer
	reports  *reports.Service
	store    store.Store
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(engine *service.ExamService, sessions *auth.Service, tokens *auth.TokenIssuer, rep *reports.Service, s store.Store, logger *slog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		sessions: sessions,
		tokens:   tokens,
		reports:  rep,
		store:    s,
		logger:   logger,
	}
}

// identity resolves the caller. A valid bearer token wins; otherwise
// the server-side session identity applies. Nil means anonymous.
func (h *Handler) identity(r *http.Request) *user.User {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if u, err := h.tokens.Verify(token); err == nil {
			return u
		}
	}
	return h.sessions.CurrentIdentity()
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleAttemptError maps attempt state machine errors to HTTP
// responses. Returns true if an error was handled.
func (h *Handler) handleAttemptError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, attempt.ErrNoExam):
		respondError(w, http.StatusConflict, "no attempt in progress")
	case errors.Is(err, attempt.ErrAlreadyCompleted):
		respondError(w, http.StatusConflict, "attempt already completed")
	case errors.Is(err, attempt.ErrUnknownQuestion):
		respondError(w, http.StatusNotFound, "question not part of the exam")
	case errors.Is(err, attempt.ErrIndexOutOfRange):
		respondError(w, http.StatusBadRequest, "question index out of range")
	case errors.Is(err, service.ErrExamNotFound):
		respondError(w, http.StatusNotFound, "exam not found")
	default:
		h.logger.Error("attempt error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
