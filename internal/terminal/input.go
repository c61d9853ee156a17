package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/kvltn8/trivia-cli-game/internal/app"
	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

type line struct {
	text string
	at   time.Time
}

// Input reads lines from a reader for the whole process lifetime and hands
// each one to at most one prompt. Lines typed ahead of a prompt are kept.
// A line read after a prompt was abandoned (timeout or cancel) and before
// the next prompt was shown is dropped, so a late answer never lands on the
// next question.
type Input struct {
	out   io.Writer
	lines chan line
	now   func() time.Time
	err   error

	mu          sync.Mutex
	abandonedAt time.Time
}

func NewInput(r io.Reader, out io.Writer) *Input {
	return newInputWithClock(r, out, time.Now)
}

func newInputWithClock(r io.Reader, out io.Writer, now func() time.Time) *Input {
	in := &Input{
		out:   out,
		lines: make(chan line),
		now:   now,
	}
	go in.scan(r)
	return in
}

func (in *Input) scan(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		in.lines <- line{text: scanner.Text(), at: in.now()}
	}
	if err := scanner.Err(); err != nil {
		in.err = fmt.Errorf("read input: %w", err)
	}
	close(in.lines)
}

// Prompt implements app.InputSource.
func (in *Input) Prompt(ctx context.Context, text string) <-chan app.Reply {
	issued := in.now()
	fmt.Fprint(in.out, "\n"+text)

	replies := make(chan app.Reply, 1)
	go func() {
		defer close(replies)
		for {
			select {
			case <-ctx.Done():
				in.abandon()
				return
			case l, ok := <-in.lines:
				if !ok {
					replies <- app.Reply{Err: in.closedErr()}
					return
				}
				if ctx.Err() != nil {
					log.Printf("dropping input %q read as the prompt was abandoned", l.text)
					in.abandon()
					return
				}
				if in.stale(l, issued) {
					log.Printf("dropping stale input %q", l.text)
					continue
				}
				in.delivered()
				replies <- app.Reply{Text: l.text}
				return
			}
		}
	}()
	return replies
}

func (in *Input) abandon() {
	now := in.now()
	in.mu.Lock()
	in.abandonedAt = now
	in.mu.Unlock()
}

func (in *Input) delivered() {
	in.mu.Lock()
	in.abandonedAt = time.Time{}
	in.mu.Unlock()
}

// stale reports whether l arrived in the gap between an abandoned prompt and the one issued at issued.
func (in *Input) stale(l line, issued time.Time) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.abandonedAt.IsZero() {
		return false
	}
	return l.at.After(in.abandonedAt) && l.at.Before(issued)
}

// closedErr is only read after lines is closed, which orders it after the write in scan.
func (in *Input) closedErr() error {
	if in.err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInputClosed, in.err)
	}
	return domain.ErrInputClosed
}
