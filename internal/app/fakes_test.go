package app_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kvltn8/trivia-cli-game/internal/app"
	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

// fakeClock advances by step on every Now call and ticks as fast as the runner reads.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) NewTicker(time.Duration) app.Ticker {
	t := &fakeTicker{c: make(chan time.Time), stop: make(chan struct{})}
	go t.run()
	return t
}

func (c *fakeClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

type fakeTicker struct {
	c    chan time.Time
	stop chan struct{}
	once sync.Once
}

func (t *fakeTicker) run() {
	for {
		select {
		case t.c <- time.Time{}:
		case <-t.stop:
			return
		}
	}
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// step is one scripted reply; silent never answers and waits to be abandoned.
type step struct {
	text   string
	silent bool
}

func answers(lines ...string) []step {
	steps := make([]step, 0, len(lines))
	for _, l := range lines {
		steps = append(steps, step{text: l})
	}
	return steps
}

// scriptedInput replays steps in order and reports a closed input once they run out.
type scriptedInput struct {
	mu      sync.Mutex
	steps   []step
	prompts []string
}

func newScriptedInput(steps ...[]step) *scriptedInput {
	in := &scriptedInput{}
	for _, s := range steps {
		in.steps = append(in.steps, s...)
	}
	return in
}

func (s *scriptedInput) Prompt(ctx context.Context, text string) <-chan app.Reply {
	s.mu.Lock()
	s.prompts = append(s.prompts, text)
	exhausted := len(s.steps) == 0
	var next step
	if !exhausted {
		next = s.steps[0]
		s.steps = s.steps[1:]
	}
	s.mu.Unlock()

	ch := make(chan app.Reply, 1)
	switch {
	case exhausted:
		ch <- app.Reply{Err: domain.ErrInputClosed}
		close(ch)
	case next.silent:
		go func() {
			<-ctx.Done()
			close(ch)
		}()
	default:
		ch <- app.Reply{Text: next.text}
		close(ch)
	}
	return ch
}

func (s *scriptedInput) promptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

type questionShown struct {
	number int
	id     string
}

// recordingDisplay keeps everything the runner narrates.
type recordingDisplay struct {
	welcomes  int
	questions []questionShown
	ticks     []int
	invalid   []string
	feedback  []domain.Feedback
	reports   []domain.Report
	history   []domain.Report
	best      domain.Report
	goodbyes  int
	onTick    func(remaining int)
}

func (d *recordingDisplay) Welcome(int) { d.welcomes++ }

func (d *recordingDisplay) Question(number, _ int, q domain.Question) {
	d.questions = append(d.questions, questionShown{number: number, id: q.ID})
}

func (d *recordingDisplay) Tick(remaining int) {
	d.ticks = append(d.ticks, remaining)
	if d.onTick != nil {
		d.onTick(remaining)
	}
}

func (d *recordingDisplay) InvalidInput(raw string) { d.invalid = append(d.invalid, raw) }
func (d *recordingDisplay) Feedback(f domain.Feedback) { d.feedback = append(d.feedback, f) }
func (d *recordingDisplay) Report(r domain.Report)     { d.reports = append(d.reports, r) }

func (d *recordingDisplay) Goodbye(history []domain.Report, best domain.Report) {
	d.goodbyes++
	d.history = history
	d.best = best
}

type mockQuizRepository struct {
	mock.Mock
}

func (m *mockQuizRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).(domain.Quiz), args.Error(1)
}
