package domain

import (
	"fmt"
	"strings"
	"time"
)

// Label identifies one of the four answer slots.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the answer slots in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// Option is one labeled answer for a question.
type Option struct {
	Label Label  `json:"label"`
	Text  string `json:"text"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Options   []Option `json:"options"`
	Correct   Label    `json:"correct"`
	TimeLimit int      `json:"timeLimit"` // seconds
}

// Duration returns the countdown length for the question.
func (q Question) Duration() time.Duration {
	return time.Duration(q.TimeLimit) * time.Second
}

// Validate checks the question has four options labeled A-D in order,
// a valid correct label and a positive time limit.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) != len(Labels) {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestion, len(Labels), len(q.Options))
	}
	for i, opt := range q.Options {
		if opt.Label != Labels[i] {
			return fmt.Errorf("%w: option %d labeled %q, want %q", ErrInvalidQuestion, i, opt.Label, Labels[i])
		}
	}
	if _, ok := ParseLabel(string(q.Correct)); !ok {
		return fmt.Errorf("%w: correct label %q", ErrInvalidQuestion, q.Correct)
	}
	if q.TimeLimit <= 0 {
		return fmt.Errorf("%w: time limit %d", ErrInvalidQuestion, q.TimeLimit)
	}
	return nil
}

// Quiz is a collection of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// Validate rejects empty quizzes and malformed questions.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return ErrEmptyQuiz
	}
	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// WithTimeLimit returns a copy of the quiz where every question uses the given limit.
// Non-positive limits leave the quiz unchanged.
func (q Quiz) WithTimeLimit(seconds int) Quiz {
	if seconds <= 0 {
		return q
	}
	questions := make([]Question, len(q.Questions))
	copy(questions, q.Questions)
	for i := range questions {
		questions[i].TimeLimit = seconds
	}
	return Quiz{ID: q.ID, Questions: questions}
}

// Normalize trims whitespace and uppercases raw input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParseLabel normalizes raw input and reports whether it names an answer slot.
func ParseLabel(raw string) (Label, bool) {
	switch l := Label(Normalize(raw)); l {
	case LabelA, LabelB, LabelC, LabelD:
		return l, true
	}
	return "", false
}

// Verdict is the outcome of a resolved attempt.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictTimeout
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictTimeout:
		return "timeout"
	}
	return "unknown"
}

// Feedback summarizes a resolved attempt for display.
type Feedback struct {
	Verdict  Verdict
	Answer   Label // empty on timeout
	Correct  Label
	Elapsed  time.Duration
	Score    int
	Answered int
}

// ElapsedSeconds formats the elapsed time with one decimal place.
func (f Feedback) ElapsedSeconds() string {
	return fmt.Sprintf("%.1f", f.Elapsed.Seconds())
}
