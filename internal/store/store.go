package store

import (
	"context"
	"errors"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
)

// HistoryCap bounds the durable result history: beyond it the oldest
// results are evicted, most-recent-last order is preserved.
const HistoryCap = 100

// Keys of the JSON key-value layout, matching the storage contract the
// front end relies on.
const (
	KeySession     = "session"
	KeyExamHistory = "exam-history"
)

// SessionState is the JSON blob stored under the session key.
type SessionState struct {
	Identity        *user.User `json:"identity"`
	IsAuthenticated bool       `json:"is_authenticated"`
}

// History is the JSON blob stored under the exam-history key.
type History struct {
	Results []attempt.Result `json:"results"`
}

// Store is the persistence interface. Implementations keep the
// key-value JSON layout described above.
type Store interface {
	SaveSession(ctx context.Context, s SessionState) error
	// LoadSession returns ErrNotFound when no session was ever saved.
	LoadSession(ctx context.Context) (SessionState, error)
	ClearSession(ctx context.Context) error

	// AppendResult appends to the capped history, evicting the oldest
	// entry once HistoryCap is exceeded.
	AppendResult(ctx context.Context, r attempt.Result) error
	// ListResults returns the history most-recent-last.
	ListResults(ctx context.Context) ([]attempt.Result, error)

	CompletedTopics(ctx context.Context, userID, courseID string) ([]int, error)
	MarkTopicCompleted(ctx context.Context, userID, courseID string, topicID int) error

	Close() error
}
