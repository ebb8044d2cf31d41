package reports

import (
	"context"
	"log/slog"
	"math"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/course"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/worker"
)

// Dashboard holds the stat-card numbers on the landing page.
type Dashboard struct {
	ActiveCourses    int `json:"active_courses"`
	ExamsPassed      int `json:"exams_passed"`
	TotalAttempts    int `json:"total_attempts"`
	AverageScore     int `json:"average_score"`
	StudyTimeSeconds int `json:"study_time_seconds"`
}

// Progress holds the chart datasets of the progress page. Attempt-indexed
// slices run oldest to newest, matching the history order.
type Progress struct {
	ScoreTrend       []int          `json:"score_trend"`
	TimeSpent        []int          `json:"time_spent"`
	CategoryAccuracy map[string]int `json:"category_accuracy"`
	Passed           int            `json:"passed"`
	Failed           int            `json:"failed"`
	CourseProgress   map[string]int `json:"course_progress"`
}

// Service aggregates the result history and course completions into
// report payloads.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

func NewService(s store.Store, logger *slog.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// resultsFor returns the history filtered to one user, or everything
// when userID is empty.
func (s *Service) resultsFor(ctx context.Context, userID string) ([]attempt.Result, error) {
	all, err := s.store.ListResults(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return all, nil
	}
	var mine []attempt.Result
	for _, r := range all {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

// Dashboard builds the stat cards for a user.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	results, err := s.resultsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		ActiveCourses: len(course.Catalog()),
		TotalAttempts: len(results),
	}
	scoreSum := 0
	for _, r := range results {
		if r.Passed {
			d.ExamsPassed++
		}
		scoreSum += r.Score
		d.StudyTimeSeconds += r.TimeSpent
	}
	if len(results) > 0 {
		d.AverageScore = int(math.Round(float64(scoreSum) / float64(len(results))))
	}
	return d, nil
}

// Progress builds the chart datasets for a user. The four datasets are
// independent, so each is computed as its own job on a small pool.
func (s *Service) Progress(ctx context.Context, userID string) (*Progress, error) {
	results, err := s.resultsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	courseProgress, err := s.courseProgress(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load course progress", "error", err)
		courseProgress = map[string]int{}
	}

	report := &Progress{CourseProgress: courseProgress}

	pool := worker.NewPool[func(*Progress)](2, 4)
	pool.Submit("score-trend", func() func(*Progress) {
		trend := make([]int, len(results))
		for i, r := range results {
			trend[i] = r.Score
		}
		return func(p *Progress) { p.ScoreTrend = trend }
	})
	pool.Submit("time-spent", func() func(*Progress) {
		spent := make([]int, len(results))
		for i, r := range results {
			spent[i] = r.TimeSpent
		}
		return func(p *Progress) { p.TimeSpent = spent }
	})
	pool.Submit("pass-fail", func() func(*Progress) {
		passed, failed := 0, 0
		for _, r := range results {
			if r.Passed {
				passed++
			} else {
				failed++
			}
		}
		return func(p *Progress) { p.Passed, p.Failed = passed, failed }
	})
	pool.Submit("category-accuracy", func() func(*Progress) {
		acc := categoryAccuracy(results)
		return func(p *Progress) { p.CategoryAccuracy = acc }
	})
	pool.Close()

	for r := range pool.Results() {
		r.Output(report)
	}
	return report, nil
}

// categoryAccuracy computes percent-correct per question category
// across all answers in the history, resolving categories through the
// exam catalog. Answers whose exam or question is no longer in the
// catalog are skipped.
func categoryAccuracy(results []attempt.Result) map[string]int {
	correct := map[string]int{}
	total := map[string]int{}
	for _, r := range results {
		e := exam.Find(r.ExamID)
		if e == nil {
			continue
		}
		for _, ans := range r.Answers {
			q := e.Question(ans.QuestionID)
			if q == nil {
				continue
			}
			total[q.Category]++
			if ans.IsCorrect {
				correct[q.Category]++
			}
		}
	}

	acc := make(map[string]int, len(total))
	for cat, n := range total {
		acc[cat] = int(math.Round(float64(correct[cat]) / float64(n) * 100))
	}
	return acc
}

func (s *Service) courseProgress(ctx context.Context, userID string) (map[string]int, error) {
	if userID == "" {
		userID = attempt.AnonymousUserID
	}
	progress := map[string]int{}
	for _, c := range course.Catalog() {
		topics, err := s.store.CompletedTopics(ctx, userID, c.ID)
		if err != nil {
			return nil, err
		}
		c.ApplyCompletions(topics)
		progress[c.ID] = c.Progress()
	}
	return progress, nil
}
