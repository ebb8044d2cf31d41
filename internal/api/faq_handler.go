package api

import (
	"net/http"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/faq"
)

// ── Request / Response types ────────────────────────────────────────────────

type FAQMessageRequest struct {
	Message string `json:"message"`
}

type FAQMessageResponse struct {
	Reply string `json:"reply"`
}

type FAQSuggestionsResponse struct {
	Greeting    string   `json:"greeting"`
	Suggestions []string `json:"suggestions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /faq/messages
func (h *Handler) postFAQMessage(w http.ResponseWriter, r *http.Request) {
	var req FAQMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, FAQMessageResponse{Reply: faq.Reply(req.Message)})
}

// GET /faq/suggestions
func (h *Handler) getFAQSuggestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, FAQSuggestionsResponse{
		Greeting:    faq.Greeting,
		Suggestions: faq.Suggestions(),
	})
}
