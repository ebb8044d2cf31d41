package api

import (
	"net/http"
	"strconv"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/course"
)

// ── Request / Response types ────────────────────────────────────────────────

type TopicResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
}

type ModuleResponse struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Topics []TopicResponse `json:"topics"`
}

type CourseResponse struct {
	ID       string           `json:"id"`
	Cedula   string           `json:"cedula"`
	Title    string           `json:"title"`
	Progress int              `json:"progress"`
	Modules  []ModuleResponse `json:"modules"`
}

type CompleteTopicResponse struct {
	CourseID string `json:"course_id"`
	TopicID  int    `json:"topic_id"`
	Progress int    `json:"progress"`
}

func courseResponse(c *course.Course) CourseResponse {
	modules := make([]ModuleResponse, len(c.Modules))
	for i, m := range c.Modules {
		topics := make([]TopicResponse, len(m.Topics))
		for j, t := range m.Topics {
			topics[j] = TopicResponse{
				ID:        t.ID,
				Title:     t.Title,
				Type:      string(t.Type),
				Completed: t.Completed,
			}
		}
		modules[i] = ModuleResponse{ID: m.ID, Title: m.Title, Topics: topics}
	}
	return CourseResponse{
		ID:       c.ID,
		Cedula:   c.Cedula,
		Title:    c.Title,
		Progress: c.Progress(),
		Modules:  modules,
	}
}

func (h *Handler) callerID(r *http.Request) string {
	if u := h.identity(r); u != nil {
		return u.ID
	}
	return attempt.AnonymousUserID
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /courses
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := h.callerID(r)

	catalog := course.Catalog()
	response := make([]CourseResponse, len(catalog))
	for i, c := range catalog {
		completed, err := h.store.CompletedTopics(ctx, userID, c.ID)
		if h.handleStoreError(w, err, "course progress") {
			return
		}
		c.ApplyCompletions(completed)
		response[i] = courseResponse(c)
	}
	respondJSON(w, http.StatusOK, response)
}

// POST /courses/{courseID}/topics/{topicID}/complete
func (h *Handler) completeTopic(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")
	topicID, err := strconv.Atoi(r.PathValue("topicID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	c := course.Find(courseID)
	if c == nil {
		respondError(w, http.StatusNotFound, "course not found")
		return
	}
	if err := c.MarkCompleted(topicID); err != nil {
		respondError(w, http.StatusNotFound, "topic not found")
		return
	}

	ctx := r.Context()
	userID := h.callerID(r)
	if err := h.store.MarkTopicCompleted(ctx, userID, courseID, topicID); h.handleStoreError(w, err, "course progress") {
		return
	}

	completed, err := h.store.CompletedTopics(ctx, userID, courseID)
	if h.handleStoreError(w, err, "course progress") {
		return
	}
	c.ApplyCompletions(completed)

	respondJSON(w, http.StatusOK, CompleteTopicResponse{
		CourseID: courseID,
		TopicID:  topicID,
		Progress: c.Progress(),
	})
}
