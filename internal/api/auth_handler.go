package api

import (
	"net/http"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/auth"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginResponse struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

type MeResponse struct {
	User            *user.User `json:"user"`
	IsAuthenticated bool       `json:"is_authenticated"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	u, err := h.sessions.Login(r.Context(), creds)
	if err != nil {
		// Validation messages are user-facing and localized.
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		h.logger.Error("failed to issue token", "email", u.Email, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{User: u, Token: token})
}

// POST /auth/logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// GET /auth/me
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u := h.identity(r)
	respondJSON(w, http.StatusOK, MeResponse{
		User:            u,
		IsAuthenticated: u != nil,
	})
}
