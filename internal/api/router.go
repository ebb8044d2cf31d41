// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler method onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Auth
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/logout", h.logout)
	mux.HandleFunc("GET /auth/me", h.me)

	// Exams
	mux.HandleFunc("GET /exams", h.listExams)
	mux.HandleFunc("GET /exams/{examID}", h.getExam)

	// Attempt
	mux.HandleFunc("POST /attempt/start", h.startAttempt)
	mux.HandleFunc("GET /attempt", h.getAttempt)
	mux.HandleFunc("POST /attempt/answers", h.submitAnswer)
	mux.HandleFunc("POST /attempt/next", h.nextQuestion)
	mux.HandleFunc("POST /attempt/previous", h.previousQuestion)
	mux.HandleFunc("POST /attempt/goto", h.jumpToQuestion)
	mux.HandleFunc("POST /attempt/complete", h.completeAttempt)
	mux.HandleFunc("POST /attempt/reset", h.resetAttempt)

	// History
	mux.HandleFunc("GET /history", h.getHistory)
	mux.HandleFunc("GET /export", h.exportHistory)

	// Courses
	mux.HandleFunc("GET /courses", h.listCourses)
	mux.HandleFunc("POST /courses/{courseID}/topics/{topicID}/complete", h.completeTopic)

	// Reports
	mux.HandleFunc("GET /reports/dashboard", h.getDashboard)
	mux.HandleFunc("GET /reports/progress", h.getProgress)

	// FAQ assistant
	mux.HandleFunc("POST /faq/messages", h.postFAQMessage)
	mux.HandleFunc("GET /faq/suggestions", h.getFAQSuggestions)
}
