package app

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts wall-clock access so countdowns can be driven by tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// Countdown counts whole seconds down to zero on top of a one-second ticker.
// It is owned by a single goroutine; Stop must be called once the race is settled.
type Countdown struct {
	remaining int
	ticker    Ticker
}

// StartCountdown counts limit down in whole seconds; a partial second is dropped.
func StartCountdown(clock Clock, limit time.Duration) *Countdown {
	return &Countdown{
		remaining: int(limit / time.Second),
		ticker:    clock.NewTicker(time.Second),
	}
}

// C fires once per elapsed second.
func (c *Countdown) C() <-chan time.Time {
	return c.ticker.C()
}

// Remaining reports the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Tick consumes one elapsed second and reports the remaining count and whether it expired.
func (c *Countdown) Tick() (int, bool) {
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining, c.remaining == 0
}

func (c *Countdown) Stop() {
	c.ticker.Stop()
}
