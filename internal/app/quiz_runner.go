package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

const (
	answerPrompt = "Your answer (A/B/C/D): "
	replayPrompt = "Would you like to play again? (Y/N): "
	affirmative  = "Y"
)

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// Reply is one line of raw input, or the reason none will come.
type Reply struct {
	Text string
	Err  error
}

// InputSource shows a prompt and delivers at most one Reply on the returned channel,
// which is closed once the wait is over. Cancelling ctx abandons the wait.
type InputSource interface {
	Prompt(ctx context.Context, text string) <-chan Reply
}

// Display receives the narration of a game in order.
type Display interface {
	Welcome(total int)
	Question(number, total int, q domain.Question)
	Tick(remaining int)
	InvalidInput(raw string)
	Feedback(f domain.Feedback)
	Report(r domain.Report)
	Goodbye(history []domain.Report, best domain.Report)
}

// ResultRecorder keeps finished game reports for the lifetime of the process.
type ResultRecorder interface {
	Record(report domain.Report)
	History() []domain.Report
	Best() (domain.Report, bool)
}

// RunnerConfig holds the pacing knobs of a game.
type RunnerConfig struct {
	IntroDelay    time.Duration
	FeedbackDelay time.Duration
	TimeLimit     int // seconds; overrides every question when > 0
}

// QuizRunner drives the question, answer, feedback cycle on a single goroutine.
type QuizRunner struct {
	quizzes QuizRepository
	input   InputSource
	display Display
	results ResultRecorder
	cfg     RunnerConfig
	clock   Clock
}

func NewQuizRunner(quizzes QuizRepository, input InputSource, display Display, results ResultRecorder, cfg RunnerConfig) *QuizRunner {
	return NewQuizRunnerWithClock(quizzes, input, display, results, cfg, SystemClock)
}

// NewQuizRunnerWithClock allows deterministic countdowns in tests.
func NewQuizRunnerWithClock(quizzes QuizRepository, input InputSource, display Display, results ResultRecorder, cfg RunnerConfig, clock Clock) *QuizRunner {
	return &QuizRunner{
		quizzes: quizzes,
		input:   input,
		display: display,
		results: results,
		cfg:     cfg,
		clock:   clock,
	}
}

// Play loads a quiz and runs games until the player declines a replay.
func (r *QuizRunner) Play(ctx context.Context, quizID string) error {
	quiz, err := r.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return fmt.Errorf("load quiz %s: %w", quizID, err)
	}
	quiz = quiz.WithTimeLimit(r.cfg.TimeLimit)
	if err := quiz.Validate(); err != nil {
		return fmt.Errorf("quiz %s: %w", quizID, err)
	}

	for {
		state := NewGameState(quiz.Questions)
		log.Printf("game %s started: quiz=%s questions=%d", state.ID(), quiz.ID, state.Total())

		report, err := r.RunGame(ctx, state)
		if err != nil {
			return err
		}
		log.Printf("game %s finished: %d/%d", report.GameID, report.Score, report.Total)
		if r.results != nil {
			r.results.Record(report)
		}

		again, err := r.AskReplay(ctx)
		if errors.Is(err, domain.ErrInputClosed) {
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	var (
		history []domain.Report
		best    domain.Report
	)
	if r.results != nil {
		history = r.results.History()
		best, _ = r.results.Best()
	}
	r.display.Goodbye(history, best)
	return nil
}

// RunGame asks every question of state in order and returns the final report.
func (r *QuizRunner) RunGame(ctx context.Context, state *GameState) (domain.Report, error) {
	if state.Total() == 0 {
		return domain.Report{}, domain.ErrEmptyQuiz
	}

	r.display.Welcome(state.Total())
	if err := r.pause(ctx, r.cfg.IntroDelay); err != nil {
		return domain.Report{}, err
	}

	for !state.Finished() {
		feedback, err := r.ask(ctx, state)
		if err != nil {
			return domain.Report{}, err
		}
		r.display.Feedback(feedback)
		if err := r.pause(ctx, r.cfg.FeedbackDelay); err != nil {
			return domain.Report{}, err
		}
	}

	report := state.report(r.clock.Now())
	r.display.Report(report)
	return report, nil
}

// AskReplay prompts once; only an exact "Y" (any case, surrounding space ignored) means yes.
func (r *QuizRunner) AskReplay(ctx context.Context) (bool, error) {
	promptCtx, cancel := context.WithCancel(ctx)
	replies := r.input.Prompt(promptCtx, replayPrompt)
	defer abandon(cancel, replies)

	select {
	case reply, ok := <-replies:
		return settleReplay(ctx, reply, ok)
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func settleReplay(ctx context.Context, reply Reply, ok bool) (bool, error) {
	if !ok {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return false, domain.ErrInputClosed
	}
	if reply.Err != nil {
		return false, reply.Err
	}
	return domain.Normalize(reply.Text) == affirmative, nil
}

// ask presents the current question until it resolves. Invalid input re-presents
// the same question with a new start time and a full countdown.
func (r *QuizRunner) ask(ctx context.Context, state *GameState) (domain.Feedback, error) {
	q := state.Current()
	for {
		state.begin(r.clock.Now())
		r.display.Question(state.CurrentIndex()+1, state.Total(), q)

		out, err := r.race(ctx, q)
		if err != nil {
			return domain.Feedback{}, err
		}
		if out.invalid {
			r.display.InvalidInput(out.raw)
			continue
		}
		return state.resolve(out.label, r.clock.Now()), nil
	}
}

type outcome struct {
	label   domain.Label // empty on timeout
	raw     string
	invalid bool
}

// race waits for whichever comes first: a line of input or the countdown reaching zero.
// Both the countdown and the pending prompt are torn down before race returns,
// so nothing from this question can reach the next one.
func (r *QuizRunner) race(ctx context.Context, q domain.Question) (outcome, error) {
	countdown := StartCountdown(r.clock, q.Duration())
	r.display.Tick(countdown.Remaining())

	promptCtx, cancel := context.WithCancel(ctx)
	replies := r.input.Prompt(promptCtx, answerPrompt)
	defer func() {
		countdown.Stop()
		abandon(cancel, replies)
	}()

	for {
		select {
		case reply, ok := <-replies:
			return settle(ctx, reply, ok)
		case <-countdown.C():
			if err := ctx.Err(); err != nil {
				return outcome{}, err
			}
			// Input that is already available beats a tick on the same instant.
			select {
			case reply, ok := <-replies:
				return settle(ctx, reply, ok)
			default:
			}
			remaining, expired := countdown.Tick()
			r.display.Tick(remaining)
			if expired {
				return outcome{}, nil
			}
		case <-ctx.Done():
			return outcome{}, ctx.Err()
		}
	}
}

func settle(ctx context.Context, reply Reply, ok bool) (outcome, error) {
	if !ok {
		if err := ctx.Err(); err != nil {
			return outcome{}, err
		}
		return outcome{}, domain.ErrInputClosed
	}
	if reply.Err != nil {
		return outcome{}, reply.Err
	}
	label, valid := domain.ParseLabel(reply.Text)
	if !valid {
		return outcome{raw: reply.Text, invalid: true}, nil
	}
	return outcome{label: label, raw: reply.Text}, nil
}

// abandon cancels a pending prompt and blocks until its channel is closed.
func abandon(cancel context.CancelFunc, replies <-chan Reply) {
	cancel()
	for range replies {
	}
}

func (r *QuizRunner) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-r.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
