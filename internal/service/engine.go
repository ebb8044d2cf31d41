// internal/service/engine.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
)

var ErrExamNotFound = errors.New("exam template not found")

// ExamService owns the single current-attempt slot. It serializes
// access so HTTP handlers and the timekeeper can share the machine,
// keeping the attempt itself a plain single-threaded state machine.
type ExamService struct {
	store  store.Store
	logger *slog.Logger

	mu      sync.Mutex
	attempt *attempt.Attempt
}

func NewExamService(s store.Store, logger *slog.Logger) *ExamService {
	return &ExamService{
		store:   s,
		logger:  logger,
		attempt: attempt.New(),
	}
}

// Snapshot is the attempt state as exposed to the presentation layer.
type Snapshot struct {
	ExamID        string               `json:"exam_id,omitempty"`
	ExamTitle     string               `json:"exam_title,omitempty"`
	Started       bool                 `json:"started"`
	Completed     bool                 `json:"completed"`
	CurrentIndex  int                  `json:"current_index"`
	TimeRemaining int                  `json:"time_remaining"`
	FormattedTime string               `json:"formatted_time"`
	Progress      int                  `json:"progress"`
	Answered      int                  `json:"answered"`
	Total         int                  `json:"total"`
	Answers       []attempt.UserAnswer `json:"answers"`
	Result        *attempt.Result      `json:"result,omitempty"`
}

func (s *ExamService) snapshotLocked() Snapshot {
	snap := Snapshot{
		Started:       s.attempt.Started(),
		Completed:     s.attempt.Completed(),
		CurrentIndex:  s.attempt.CurrentIndex(),
		TimeRemaining: s.attempt.TimeRemaining(),
		FormattedTime: s.attempt.FormattedTime(),
		Answers:       s.attempt.Answers(),
		Result:        s.attempt.Result(),
	}
	if e := s.attempt.Exam(); e != nil {
		snap.ExamID = e.ID
		snap.ExamTitle = e.Title
	}
	snap.Progress, snap.Answered, snap.Total = s.attempt.Progress()
	return snap
}

// Snapshot returns the current attempt state.
func (s *ExamService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start begins a new attempt on the named exam template, discarding any
// prior attempt. An empty examID selects the built-in sample exam.
func (s *ExamService) Start(examID string) (Snapshot, error) {
	var e *exam.Exam
	if examID != "" {
		if e = exam.Find(examID); e == nil {
			return Snapshot{}, ErrExamNotFound
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt.Start(e)
	return s.snapshotLocked(), nil
}

func (s *ExamService) Answer(questionID string, selectedOption int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt.Answer(questionID, selectedOption)
}

func (s *ExamService) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt.Next()
}

func (s *ExamService) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt.Previous()
}

func (s *ExamService) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt.JumpTo(index)
}

// Tick advances the countdown by one second. It reports whether the
// attempt has just run out of time and needs completing; the caller
// (the timekeeper) owns that follow-up.
func (s *ExamService) Tick() (expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attempt.Started() || s.attempt.Completed() {
		return false
	}
	s.attempt.Tick()
	return s.attempt.TimeRemaining() == 0
}

// Complete finalizes the attempt with the given identity (nil means
// anonymous) and appends the result to the durable history. A result of
// an already-completed attempt is returned as-is, without touching the
// history again; a failed history write is logged and swallowed so the
// in-memory transition always stands.
func (s *ExamService) Complete(ctx context.Context, identity *user.User) (*attempt.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alreadyCompleted := s.attempt.Completed()

	userID := ""
	if identity != nil {
		userID = identity.ID
	}
	result, err := s.attempt.Complete(userID)
	if err != nil {
		return nil, err
	}
	if alreadyCompleted {
		return result, nil
	}

	if err := s.store.AppendResult(ctx, *result); err != nil {
		s.logger.Error("failed to append result to history",
			"result_id", result.ID,
			"error", err,
		)
	}
	return result, nil
}

// Reset discards the current attempt and returns to the NotStarted
// state.
func (s *ExamService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt.Reset()
}
