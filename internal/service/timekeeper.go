// internal/service/timekeeper.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
)

// IdentityProvider yields the identity an expired attempt is completed
// under. A nil identity means anonymous.
type IdentityProvider interface {
	CurrentIdentity() *user.User
}

// Timekeeper drives the exam countdown. It ticks the engine once per
// interval and, when the clock reaches zero on an in-progress attempt,
// completes it exactly once on behalf of the current identity.
type Timekeeper struct {
	engine   *ExamService
	sessions IdentityProvider
	interval time.Duration
	logger   *slog.Logger
}

func NewTimekeeper(engine *ExamService, sessions IdentityProvider, interval time.Duration, logger *slog.Logger) *Timekeeper {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timekeeper{
		engine:   engine,
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (tk *Timekeeper) Run(ctx context.Context) {
	ticker := time.NewTicker(tk.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if tk.engine.Tick() {
				tk.autoSubmit(ctx)
			}
		}
	}
}

func (tk *Timekeeper) autoSubmit(ctx context.Context) {
	result, err := tk.engine.Complete(ctx, tk.sessions.CurrentIdentity())
	if err != nil {
		// A concurrent reset can empty the slot between the tick
		// and the completion. Nothing to submit then.
		if errors.Is(err, attempt.ErrNoExam) {
			return
		}
		tk.logger.Error("auto-submit failed", "error", err)
		return
	}
	tk.logger.Info("attempt auto-submitted on timeout",
		"result_id", result.ID,
		"score", result.Score,
		"passed", result.Passed,
	)
}
