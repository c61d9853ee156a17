package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

// GameState is the mutable state of one game. A replay gets a new instance.
type GameState struct {
	id            uuid.UUID
	questions     []domain.Question
	currentIndex  int
	score         int
	questionStart time.Time
}

func NewGameState(questions []domain.Question) *GameState {
	return &GameState{
		id:        uuid.New(),
		questions: append([]domain.Question(nil), questions...),
	}
}

func (s *GameState) ID() string {
	return s.id.String()
}

func (s *GameState) CurrentIndex() int { return s.currentIndex }
func (s *GameState) Score() int        { return s.score }
func (s *GameState) Total() int        { return len(s.questions) }

// Finished reports whether every question has been resolved.
func (s *GameState) Finished() bool {
	return s.currentIndex >= len(s.questions)
}

// Current returns the question being asked. Callers check Finished first.
func (s *GameState) Current() domain.Question {
	return s.questions[s.currentIndex]
}

func (s *GameState) begin(now time.Time) {
	s.questionStart = now
}

// resolve scores the current question and advances. An empty answer means the countdown expired.
func (s *GameState) resolve(answer domain.Label, now time.Time) domain.Feedback {
	q := s.Current()
	verdict := domain.VerdictIncorrect
	switch {
	case answer == "":
		verdict = domain.VerdictTimeout
	case answer == q.Correct:
		verdict = domain.VerdictCorrect
		s.score++
	}
	s.currentIndex++

	return domain.Feedback{
		Verdict:  verdict,
		Answer:   answer,
		Correct:  q.Correct,
		Elapsed:  now.Sub(s.questionStart),
		Score:    s.score,
		Answered: s.currentIndex,
	}
}

func (s *GameState) report(now time.Time) domain.Report {
	return domain.NewReport(s.ID(), s.score, len(s.questions), now)
}
