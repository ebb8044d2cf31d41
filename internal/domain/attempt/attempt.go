package attempt

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/id"
)

// AnonymousUserID is stamped on results completed without an
// authenticated identity.
const AnonymousUserID = "anonymous"

var (
	ErrNoExam           = errors.New("no exam in progress")
	ErrUnknownQuestion  = errors.New("question does not belong to the current exam")
	ErrAlreadyCompleted = errors.New("attempt already completed")
	ErrIndexOutOfRange  = errors.New("question index out of range")
)

// UserAnswer records the selected option for one question. Correctness is
// derived once, at answer time, against the question's fixed correct index.
type UserAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// Result is the immutable outcome of a completed attempt.
type Result struct {
	ID             string       `json:"id"`
	ExamID         string       `json:"exam_id"`
	UserID         string       `json:"user_id"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	CorrectAnswers int          `json:"correct_answers"`
	WrongAnswers   int          `json:"wrong_answers"`
	TimeSpent      int          `json:"time_spent"` // seconds
	Answers        []UserAnswer `json:"answers"`
	Passed         bool         `json:"passed"`
	CompletedAt    time.Time    `json:"completed_at"`
}

// Attempt is the lifecycle of one timed exam run: NotStarted → InProgress →
// Completed, with Reset returning to NotStarted from any state. Fields are
// unexported so all mutation goes through the guarded operations.
type Attempt struct {
	exam          *exam.Exam
	currentIndex  int
	answers       []UserAnswer
	timeRemaining int
	started       bool
	completed     bool
	result        *Result
}

// New returns an attempt in the NotStarted state.
func New() *Attempt {
	return &Attempt{}
}

// Start binds the attempt to an exam template and resets all progress.
// A nil exam selects the built-in sample. Any prior attempt, finished or
// not, is discarded: there is a single current-attempt slot, no merge.
func (a *Attempt) Start(e *exam.Exam) {
	if e == nil {
		e = exam.SampleExam()
	}
	a.exam = e
	a.currentIndex = 0
	a.answers = nil
	a.timeRemaining = e.TimeLimitSeconds()
	a.started = true
	a.completed = false
	a.result = nil
}

// Answer upserts the answer for a question of the current exam.
// Re-answering replaces the previous answer in place, keeping its
// position; a first answer is appended.
func (a *Attempt) Answer(questionID string, selectedOption int) error {
	if a.exam == nil {
		return ErrNoExam
	}
	if a.completed {
		return ErrAlreadyCompleted
	}
	q := a.exam.Question(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}

	ans := UserAnswer{
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		IsCorrect:      q.CorrectOption == selectedOption,
	}
	for i := range a.answers {
		if a.answers[i].QuestionID == questionID {
			a.answers[i] = ans
			return nil
		}
	}
	a.answers = append(a.answers, ans)
	return nil
}

// Next advances the question index by one. At the last question it is a
// no-op: navigation clamps, it never wraps.
func (a *Attempt) Next() error {
	if a.exam == nil {
		return ErrNoExam
	}
	if a.completed {
		return ErrAlreadyCompleted
	}
	if a.currentIndex < len(a.exam.Questions)-1 {
		a.currentIndex++
	}
	return nil
}

// Previous moves the question index back by one, clamped at zero.
func (a *Attempt) Previous() error {
	if a.exam == nil {
		return ErrNoExam
	}
	if a.completed {
		return ErrAlreadyCompleted
	}
	if a.currentIndex > 0 {
		a.currentIndex--
	}
	return nil
}

// JumpTo sets the question index directly. Out-of-range indices are
// rejected, not clamped.
func (a *Attempt) JumpTo(index int) error {
	if a.exam == nil {
		return ErrNoExam
	}
	if a.completed {
		return ErrAlreadyCompleted
	}
	if index < 0 || index >= len(a.exam.Questions) {
		return ErrIndexOutOfRange
	}
	a.currentIndex = index
	return nil
}

// Tick decrements the remaining time by one second. It is a no-op once
// the attempt is completed or time is already exhausted, and it never
// triggers completion itself: the caller observes TimeRemaining() == 0
// and invokes Complete.
func (a *Attempt) Tick() {
	if a.completed || a.timeRemaining <= 0 {
		return
	}
	a.timeRemaining--
}

// Complete finalizes the attempt and builds its result, stamped with the
// acting user (or the anonymous sentinel if userID is empty). Calling it
// on an already-completed attempt returns the existing result unchanged,
// so an at-least-once completion trigger cannot corrupt anything.
func (a *Attempt) Complete(userID string) (*Result, error) {
	if a.exam == nil {
		return nil, ErrNoExam
	}
	if a.completed {
		return a.result, nil
	}
	if userID == "" {
		userID = AnonymousUserID
	}

	correct := 0
	for _, ans := range a.answers {
		if ans.IsCorrect {
			correct++
		}
	}
	total := len(a.exam.Questions)
	score := int(math.Round(float64(correct) / float64(total) * 100))
	timeSpent := a.exam.TimeLimitSeconds() - a.timeRemaining
	if timeSpent < 0 {
		timeSpent = 0
	}

	answers := make([]UserAnswer, len(a.answers))
	copy(answers, a.answers)

	a.result = &Result{
		ID:             id.GenerateID(),
		ExamID:         a.exam.ID,
		UserID:         userID,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   total - correct,
		TimeSpent:      timeSpent,
		Answers:        answers,
		Passed:         score >= a.exam.PassingScore,
		CompletedAt:    time.Now().UTC(),
	}
	a.completed = true
	return a.result, nil
}

// Reset unconditionally returns the attempt to the NotStarted state.
func (a *Attempt) Reset() {
	*a = Attempt{}
}

// ── Read-only accessors ─────────────────────────────────────────────────────

func (a *Attempt) Exam() *exam.Exam { return a.exam }

func (a *Attempt) CurrentIndex() int { return a.currentIndex }

// CurrentQuestion returns the question at the current index, or nil when
// no exam is bound.
func (a *Attempt) CurrentQuestion() *exam.Question {
	if a.exam == nil {
		return nil
	}
	return &a.exam.Questions[a.currentIndex]
}

// Answers returns a copy of the recorded answers in insertion order.
func (a *Attempt) Answers() []UserAnswer {
	out := make([]UserAnswer, len(a.answers))
	copy(out, a.answers)
	return out
}

// AnswerFor returns the recorded answer for a question, or nil.
func (a *Attempt) AnswerFor(questionID string) *UserAnswer {
	for i := range a.answers {
		if a.answers[i].QuestionID == questionID {
			ans := a.answers[i]
			return &ans
		}
	}
	return nil
}

func (a *Attempt) TimeRemaining() int { return a.timeRemaining }

func (a *Attempt) Started() bool { return a.started }

func (a *Attempt) Completed() bool { return a.completed }

func (a *Attempt) Result() *Result { return a.result }

// Progress reports how much of the exam has been answered, as a rounded
// percentage plus raw counts.
func (a *Attempt) Progress() (percent, answered, total int) {
	if a.exam == nil {
		return 0, 0, 0
	}
	answered = len(a.answers)
	total = len(a.exam.Questions)
	percent = int(math.Round(float64(answered) / float64(total) * 100))
	return percent, answered, total
}

// FormattedTime renders the remaining time as MM:SS for display.
func (a *Attempt) FormattedTime() string {
	return fmt.Sprintf("%02d:%02d", a.timeRemaining/60, a.timeRemaining%60)
}
