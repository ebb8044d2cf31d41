package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartAttemptRequest struct {
	ExamID string `json:"exam_id"` // empty selects the sample exam
}

type SubmitAnswerRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
}

type JumpToRequest struct {
	Index int `json:"index"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /attempt/start
func (h *Handler) startAttempt(w http.ResponseWriter, r *http.Request) {
	var req StartAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.engine.Start(req.ExamID)
	if h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// GET /attempt
func (h *Handler) getAttempt(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// POST /attempt/answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.engine.Answer(req.QuestionID, req.SelectedOption); h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// POST /attempt/next
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Next(); h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// POST /attempt/previous
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Previous(); h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// POST /attempt/goto
func (h *Handler) jumpToQuestion(w http.ResponseWriter, r *http.Request) {
	var req JumpToRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.engine.JumpTo(req.Index); h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// POST /attempt/complete
func (h *Handler) completeAttempt(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Complete(r.Context(), h.identity(r))
	if h.handleAttemptError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// POST /attempt/reset
func (h *Handler) resetAttempt(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset()
	w.WriteHeader(http.StatusNoContent)
}
