package reports_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/reports"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
)

func newReports(t *testing.T) (*reports.Service, *store.SQLiteStore) {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return reports.NewService(s, slog.New(slog.DiscardHandler)), s
}

// completedResult runs a full attempt against the sample exam answering
// the first `correct` questions correctly and the rest wrong.
func completedResult(t *testing.T, userID string, correct int) attempt.Result {
	t.Helper()
	a := attempt.New()
	e := exam.SampleExam()
	a.Start(e)
	for i, q := range e.Questions {
		selected := q.CorrectOption
		if i >= correct {
			selected = (q.CorrectOption + 1) % len(q.Options)
		}
		if err := a.Answer(q.ID, selected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i := 0; i < 60; i++ {
		a.Tick()
	}
	result, err := a.Complete(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return *result
}

func TestDashboard(t *testing.T) {
	svc, s := newReports(t)
	ctx := context.Background()

	s.AppendResult(ctx, completedResult(t, "u1", 10)) // 100, passed
	s.AppendResult(ctx, completedResult(t, "u1", 5))  // 50, failed
	s.AppendResult(ctx, completedResult(t, "u2", 10)) // another user

	d, err := svc.Dashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalAttempts != 2 {
		t.Errorf("expected 2 attempts for u1, got %d", d.TotalAttempts)
	}
	if d.ExamsPassed != 1 {
		t.Errorf("expected 1 passed exam, got %d", d.ExamsPassed)
	}
	if d.AverageScore != 75 {
		t.Errorf("expected average 75, got %d", d.AverageScore)
	}
	if d.StudyTimeSeconds != 120 {
		t.Errorf("expected 120 seconds of study time, got %d", d.StudyTimeSeconds)
	}
}

func TestDashboard_EmptyHistory(t *testing.T) {
	svc, _ := newReports(t)

	d, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalAttempts != 0 || d.AverageScore != 0 {
		t.Errorf("expected zeroed dashboard, got %+v", d)
	}
}

func TestProgress(t *testing.T) {
	svc, s := newReports(t)
	ctx := context.Background()

	s.AppendResult(ctx, completedResult(t, "u1", 10))
	s.AppendResult(ctx, completedResult(t, "u1", 7))
	s.MarkTopicCompleted(ctx, "u1", "curso-1", 1)
	s.MarkTopicCompleted(ctx, "u1", "curso-1", 2)

	p, err := svc.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.ScoreTrend) != 2 || p.ScoreTrend[0] != 100 || p.ScoreTrend[1] != 70 {
		t.Errorf("unexpected score trend: %v", p.ScoreTrend)
	}
	if len(p.TimeSpent) != 2 || p.TimeSpent[0] != 60 {
		t.Errorf("unexpected time spent: %v", p.TimeSpent)
	}
	if p.Passed != 2 || p.Failed != 0 {
		t.Errorf("expected 2 passed / 0 failed, got %d/%d", p.Passed, p.Failed)
	}
	// Both attempts answered every Regulación question; the first got
	// them all right, the second got questions 1-7 right (including both
	// Regulación ones), so accuracy is 100.
	if p.CategoryAccuracy["Regulación"] != 100 {
		t.Errorf("unexpected category accuracy: %v", p.CategoryAccuracy)
	}
	// 2 of 17 topics rounds to 12.
	if p.CourseProgress["curso-1"] != 12 {
		t.Errorf("expected 12%% course progress, got %d", p.CourseProgress["curso-1"])
	}
}
