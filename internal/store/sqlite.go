// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS course_topics (
    user_id TEXT NOT NULL,
    course_id TEXT NOT NULL,
    topic_id INTEGER NOT NULL,
    completed_at TEXT NOT NULL,
    PRIMARY KEY (user_id, course_id, topic_id)
);
`

// SQLiteStore persists the key-value JSON blobs and course completions
// in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Key-value blobs
// ============================================================================

func (s *SQLiteStore) getJSON(ctx context.Context, key string, v any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}

func (s *SQLiteStore) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	)
	return err
}

// ============================================================================
// Session
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, state SessionState) error {
	return s.putJSON(ctx, KeySession, state)
}

func (s *SQLiteStore) LoadSession(ctx context.Context) (SessionState, error) {
	var state SessionState
	if err := s.getJSON(ctx, KeySession, &state); err != nil {
		return SessionState{}, err
	}
	return state, nil
}

func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	return s.putJSON(ctx, KeySession, SessionState{})
}

// ============================================================================
// Exam history
// ============================================================================

// AppendResult does the read-modify-write of the history blob inside a
// transaction so concurrent writers cannot drop each other's entries.
func (s *SQLiteStore) AppendResult(ctx context.Context, r attempt.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var history History
	var raw string
	err = tx.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", KeyExamHistory).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		// first result ever
	case err != nil:
		return err
	default:
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			return fmt.Errorf("corrupt history blob: %w", err)
		}
	}

	history.Results = append(history.Results, r)
	if len(history.Results) > HistoryCap {
		history.Results = history.Results[len(history.Results)-HistoryCap:]
	}

	out, err := json.Marshal(history)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		KeyExamHistory, string(out),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListResults(ctx context.Context) ([]attempt.Result, error) {
	var history History
	err := s.getJSON(ctx, KeyExamHistory, &history)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return history.Results, nil
}

// ============================================================================
// Course progress
// ============================================================================

func (s *SQLiteStore) CompletedTopics(ctx context.Context, userID, courseID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT topic_id FROM course_topics WHERE user_id = ? AND course_id = ? ORDER BY topic_id",
		userID, courseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		topics = append(topics, id)
	}
	return topics, rows.Err()
}

func (s *SQLiteStore) MarkTopicCompleted(ctx context.Context, userID, courseID string, topicID int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO course_topics (user_id, course_id, topic_id, completed_at) VALUES (?, ?, ?, ?)",
		userID, courseID, topicID, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
