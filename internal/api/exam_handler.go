package api

import (
	"net/http"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExamSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	QuestionCount int    `json:"question_count"`
	TimeLimit     int    `json:"time_limit"`
	PassingScore  int    `json:"passing_score"`
}

type ExamQuestion struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

type ExamDetail struct {
	ExamSummary
	Questions []ExamQuestion `json:"questions"`
}

func summarize(e *exam.Exam) ExamSummary {
	return ExamSummary{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Category:      e.Category,
		QuestionCount: len(e.Questions),
		TimeLimit:     e.TimeLimit,
		PassingScore:  e.PassingScore,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /exams
func (h *Handler) listExams(w http.ResponseWriter, r *http.Request) {
	catalog := exam.Catalog()
	response := make([]ExamSummary, len(catalog))
	for i, e := range catalog {
		response[i] = summarize(e)
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /exams/{examID}
//
// Correct options are never exposed here; grading happens server-side.
func (h *Handler) getExam(w http.ResponseWriter, r *http.Request) {
	e := exam.Find(r.PathValue("examID"))
	if e == nil {
		respondError(w, http.StatusNotFound, "exam not found")
		return
	}

	questions := make([]ExamQuestion, len(e.Questions))
	for i, q := range e.Questions {
		questions[i] = ExamQuestion{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Category:   q.Category,
			Difficulty: string(q.Difficulty),
		}
	}

	respondJSON(w, http.StatusOK, ExamDetail{
		ExamSummary: summarize(e),
		Questions:   questions,
	})
}
