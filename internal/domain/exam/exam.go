package exam

import (
	"errors"
	"fmt"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var (
	ErrNoQuestions      = errors.New("exam has no questions")
	ErrBadCorrectOption = errors.New("correct option index out of range")
)

// Question is a single multiple-choice question. Immutable once defined.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectOption int
	Category      string
	Difficulty    Difficulty
}

// Exam is an immutable exam template. Question order is significant:
// it defines navigation order and question-index addressing.
type Exam struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Questions    []Question
	TimeLimit    int // minutes
	PassingScore int // percent threshold
}

// New validates and builds an exam template. An exam with no questions
// is rejected here so score arithmetic downstream never divides by zero.
func New(id, title, description, category string, questions []Question, timeLimit, passingScore int) (*Exam, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, q := range questions {
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrBadCorrectOption)
		}
	}
	return &Exam{
		ID:           id,
		Title:        title,
		Description:  description,
		Category:     category,
		Questions:    questions,
		TimeLimit:    timeLimit,
		PassingScore: passingScore,
	}, nil
}

// Question returns the question with the given ID, or nil.
func (e *Exam) Question(questionID string) *Question {
	for i := range e.Questions {
		if e.Questions[i].ID == questionID {
			return &e.Questions[i]
		}
	}
	return nil
}

// TimeLimitSeconds is the full time allotment in whole seconds.
func (e *Exam) TimeLimitSeconds() int {
	return e.TimeLimit * 60
}
