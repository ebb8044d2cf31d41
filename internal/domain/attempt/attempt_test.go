package attempt_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/attempt"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
)

func examWithQuestions(n int) *exam.Exam {
	questions := make([]exam.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = exam.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Text:          fmt.Sprintf("Question %d", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: i % 4,
			Category:      "General",
			Difficulty:    exam.DifficultyEasy,
		}
	}
	e, err := exam.New("test-exam", "Test Exam", "", "General", questions, 15, 70)
	if err != nil {
		panic(err)
	}
	return e
}

func TestStart_InitialState(t *testing.T) {
	a := attempt.New()
	e := examWithQuestions(10)
	a.Start(e)

	if a.CurrentIndex() != 0 {
		t.Errorf("expected index 0, got %d", a.CurrentIndex())
	}
	if len(a.Answers()) != 0 {
		t.Errorf("expected no answers, got %d", len(a.Answers()))
	}
	if a.TimeRemaining() != 15*60 {
		t.Errorf("expected %d seconds remaining, got %d", 15*60, a.TimeRemaining())
	}
	if !a.Started() {
		t.Error("expected started=true")
	}
	if a.Completed() {
		t.Error("expected completed=false")
	}
	if a.Result() != nil {
		t.Error("expected no result after start")
	}
}

func TestStart_NilExamUsesSample(t *testing.T) {
	a := attempt.New()
	a.Start(nil)

	if a.Exam() == nil {
		t.Fatal("expected the built-in sample exam")
	}
	if a.Exam().ID != "examen-cnsf-2.1" {
		t.Errorf("expected sample exam, got %q", a.Exam().ID)
	}
	if len(a.Exam().Questions) != 10 {
		t.Errorf("expected 10 sample questions, got %d", len(a.Exam().Questions))
	}
}

func TestStart_DiscardsPriorAttempt(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(5))
	if err := a.Answer("q1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Start(examWithQuestions(5))
	if len(a.Answers()) != 0 {
		t.Error("expected a fresh attempt after second start")
	}
}

func TestAnswer_ReplacesNotAppends(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(3))

	// q1's correct option is 0
	if err := a.Answer("q1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Answer("q2", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Answer("q1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers := a.Answers()
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	// Re-answering keeps the original position.
	if answers[0].QuestionID != "q1" {
		t.Errorf("expected q1 to keep position 0, got %q", answers[0].QuestionID)
	}
	if answers[0].SelectedOption != 0 || !answers[0].IsCorrect {
		t.Errorf("expected last answer to win: %+v", answers[0])
	}
}

func TestAnswer_Correctness(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(2))

	a.Answer("q2", 1) // correct option for q2 is 1
	ans := a.AnswerFor("q2")
	if ans == nil || !ans.IsCorrect {
		t.Errorf("expected q2 answer 1 to be correct, got %+v", ans)
	}

	a.Answer("q2", 3)
	ans = a.AnswerFor("q2")
	if ans == nil || ans.IsCorrect {
		t.Errorf("expected q2 answer 3 to be wrong, got %+v", ans)
	}
}

func TestAnswer_Errors(t *testing.T) {
	a := attempt.New()
	if err := a.Answer("q1", 0); !errors.Is(err, attempt.ErrNoExam) {
		t.Errorf("expected ErrNoExam, got %v", err)
	}

	a.Start(examWithQuestions(2))
	if err := a.Answer("nope", 0); !errors.Is(err, attempt.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}

	a.Complete("")
	if err := a.Answer("q1", 0); !errors.Is(err, attempt.ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestNavigation_ClampsAtBounds(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(10))

	// N calls to Next from index 0 end at N-1, not N.
	for i := 0; i < 10; i++ {
		if err := a.Next(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if a.CurrentIndex() != 9 {
		t.Errorf("expected index 9 after 10 Next calls, got %d", a.CurrentIndex())
	}

	for i := 0; i < 20; i++ {
		if err := a.Previous(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if a.CurrentIndex() != 0 {
		t.Errorf("expected index 0 after Previous calls, got %d", a.CurrentIndex())
	}
}

func TestJumpTo_ValidatesBounds(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(5))

	if err := a.JumpTo(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.CurrentIndex() != 4 {
		t.Errorf("expected index 4, got %d", a.CurrentIndex())
	}

	if err := a.JumpTo(5); !errors.Is(err, attempt.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for index 5, got %v", err)
	}
	if err := a.JumpTo(-1); !errors.Is(err, attempt.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for index -1, got %v", err)
	}
	if a.CurrentIndex() != 4 {
		t.Errorf("rejected jump must not move the index, got %d", a.CurrentIndex())
	}
}

func TestTick_CountsDownAndStopsAtZero(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(10)) // 15 minutes

	for i := 0; i < 900; i++ {
		a.Tick()
	}
	if a.TimeRemaining() != 0 {
		t.Fatalf("expected 0 remaining after 900 ticks, got %d", a.TimeRemaining())
	}

	// Further ticks stay at zero and do not panic.
	a.Tick()
	a.Tick()
	if a.TimeRemaining() != 0 {
		t.Errorf("expected remaining to stay at 0, got %d", a.TimeRemaining())
	}
}

func TestTick_NoopAfterCompletion(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(10))
	a.Tick()
	a.Complete("")

	before := a.TimeRemaining()
	a.Tick()
	if a.TimeRemaining() != before {
		t.Errorf("expected remaining unchanged after completion, got %d", a.TimeRemaining())
	}
}

func TestComplete_AllCorrect(t *testing.T) {
	a := attempt.New()
	e := examWithQuestions(10)
	a.Start(e)

	for _, q := range e.Questions {
		if err := a.Answer(q.ID, q.CorrectOption); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	result, err := a.Complete("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if result.CorrectAnswers != 10 || result.WrongAnswers != 0 {
		t.Errorf("expected 10 correct / 0 wrong, got %d/%d", result.CorrectAnswers, result.WrongAnswers)
	}
	if !result.Passed {
		t.Error("expected passed with score 100 >= 70")
	}
	if result.UserID != "user-1" {
		t.Errorf("expected user-1, got %q", result.UserID)
	}
}

func TestComplete_ExactlyAtPassingBoundary(t *testing.T) {
	a := attempt.New()
	e := examWithQuestions(10)
	a.Start(e)

	// Answer 1-7 correctly, leave 8-10 unanswered.
	for _, q := range e.Questions[:7] {
		a.Answer(q.ID, q.CorrectOption)
	}

	result, err := a.Complete("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CorrectAnswers != 7 || result.WrongAnswers != 3 {
		t.Errorf("expected 7 correct / 3 wrong, got %d/%d", result.CorrectAnswers, result.WrongAnswers)
	}
	if result.Score != 70 {
		t.Errorf("expected score 70, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("expected score == passing threshold to pass")
	}
	if result.UserID != attempt.AnonymousUserID {
		t.Errorf("expected anonymous sentinel, got %q", result.UserID)
	}
}

func TestComplete_Invariants(t *testing.T) {
	a := attempt.New()
	e := examWithQuestions(7)
	a.Start(e)
	a.Answer("q1", e.Questions[0].CorrectOption)
	a.Answer("q2", (e.Questions[1].CorrectOption+1)%4)

	result, err := a.Complete("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CorrectAnswers+result.WrongAnswers != result.TotalQuestions {
		t.Errorf("correct+wrong != total: %d+%d != %d",
			result.CorrectAnswers, result.WrongAnswers, result.TotalQuestions)
	}
	// 1/7 rounds to 14.
	if result.Score != 14 {
		t.Errorf("expected rounded score 14, got %d", result.Score)
	}
}

func TestComplete_TimeSpent(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(10)) // 900 seconds

	for i := 0; i < 30; i++ {
		a.Tick()
	}

	result, err := a.Complete("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TimeSpent != 30 {
		t.Errorf("expected 30 seconds spent, got %d", result.TimeSpent)
	}
}

func TestComplete_IdempotentReturnsSameResult(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(5))
	a.Answer("q1", 0)

	first, err := a.Complete("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Complete("user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the same result instance on repeated completion")
	}
	if second.UserID != "user-1" {
		t.Errorf("expected original user stamp preserved, got %q", second.UserID)
	}
}

func TestComplete_WithoutExam(t *testing.T) {
	a := attempt.New()
	if _, err := a.Complete(""); !errors.Is(err, attempt.ErrNoExam) {
		t.Errorf("expected ErrNoExam, got %v", err)
	}
}

func TestReset_ReturnsToNotStarted(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(5))
	a.Answer("q1", 0)
	a.Tick()
	a.Complete("")

	a.Reset()

	if a.Exam() != nil {
		t.Error("expected no exam after reset")
	}
	if a.CurrentIndex() != 0 || a.TimeRemaining() != 0 {
		t.Error("expected zeroed index and time after reset")
	}
	if a.Started() || a.Completed() {
		t.Error("expected both flags cleared after reset")
	}
	if a.Result() != nil {
		t.Error("expected no result after reset")
	}
	if len(a.Answers()) != 0 {
		t.Error("expected no answers after reset")
	}
}

func TestResultIDs_DistinctAcrossAttempts(t *testing.T) {
	a := attempt.New()

	a.Start(examWithQuestions(3))
	first, _ := a.Complete("")

	a.Reset()
	a.Start(examWithQuestions(3))
	second, _ := a.Complete("")

	if first.ID == second.ID {
		t.Errorf("expected distinct result IDs, both were %q", first.ID)
	}
}

func TestProgress(t *testing.T) {
	a := attempt.New()
	e := examWithQuestions(10)
	a.Start(e)
	a.Answer("q1", 0)
	a.Answer("q2", 0)
	a.Answer("q3", 0)

	percent, answered, total := a.Progress()
	if percent != 30 || answered != 3 || total != 10 {
		t.Errorf("expected 30%% (3/10), got %d%% (%d/%d)", percent, answered, total)
	}
}

func TestFormattedTime(t *testing.T) {
	a := attempt.New()
	a.Start(examWithQuestions(10)) // 15:00

	if got := a.FormattedTime(); got != "15:00" {
		t.Errorf("expected 15:00, got %q", got)
	}
	for i := 0; i < 61; i++ {
		a.Tick()
	}
	if got := a.FormattedTime(); got != "13:59" {
		t.Errorf("expected 13:59, got %q", got)
	}
}
