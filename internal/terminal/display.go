package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

const width = 50

// Display renders game narration as plain text lines.
type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (d *Display) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func rule(ch string) string {
	return strings.Repeat(ch, width)
}

func (d *Display) Welcome(total int) {
	d.printf("%s\n", rule("="))
	d.printf("         WELCOME TO CLI TRIVIA GAME\n")
	d.printf("%s\n", rule("="))
	d.printf("\nRules:\n")
	d.printf("- %d questions, each with its own time limit\n", total)
	d.printf("- Type A, B, C, or D to select your answer\n")
	d.printf("- Your score will be displayed at the end\n")
	d.printf("\n%s\n\n", rule("="))
}

func (d *Display) Question(number, total int, q domain.Question) {
	d.printf("\nQuestion %d/%d\n", number, total)
	d.printf("%s\n", rule("-"))
	d.printf("%s\n", q.Prompt)
	for _, opt := range q.Options {
		d.printf("%s) %s\n", opt.Label, opt.Text)
	}
	d.printf("\nTime limit: %d seconds\n", q.TimeLimit)
	d.printf("%s\n", rule("-"))
}

func (d *Display) Tick(remaining int) {
	d.printf("\rTime remaining: %ds ", remaining)
}

func (d *Display) InvalidInput(raw string) {
	d.printf("\n\nInvalid input %q: %v. The question starts over.\n", raw, domain.ErrInvalidAnswer)
}

func (d *Display) Feedback(f domain.Feedback) {
	d.printf("\n\n%s\n", rule("="))
	switch f.Verdict {
	case domain.VerdictCorrect:
		d.printf("CORRECT! Well done!\n")
	case domain.VerdictTimeout:
		d.printf("TIME UP! The correct answer was: %s\n", f.Correct)
	default:
		d.printf("INCORRECT! You answered %s, the correct answer was: %s\n", f.Answer, f.Correct)
	}
	d.printf("Time taken: %ss\n", f.ElapsedSeconds())
	d.printf("Current score: %d/%d\n", f.Score, f.Answered)
	d.printf("%s\n", rule("="))
}

func (d *Display) Report(r domain.Report) {
	d.printf("\n%s\n", rule("="))
	d.printf("              GAME OVER!\n")
	d.printf("%s\n\n", rule("="))

	tw := table.NewWriter()
	tw.AppendRow(table.Row{"Final Score", fmt.Sprintf("%d/%d", r.Score, r.Total)})
	tw.AppendRow(table.Row{"Percentage", r.PercentageString() + "%"})
	d.printf("%s\n", tw.Render())

	d.printf("\n%s\n", r.Band.Remark)
	d.printf("\n%s\n", rule("="))
}

// Goodbye prints a summary of every game played in this process when there was more than one.
func (d *Display) Goodbye(history []domain.Report, best domain.Report) {
	if len(history) > 1 {
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"Game", "Score", "Percentage", "Band"})
		bestNumber := 0
		for i, r := range history {
			tw.AppendRow(table.Row{i + 1, fmt.Sprintf("%d/%d", r.Score, r.Total), r.PercentageString() + "%", r.Band.Name})
			if r.GameID == best.GameID {
				bestNumber = i + 1
			}
		}
		tw.Style().Format = table.FormatOptions{
			Header: text.FormatDefault,
		}
		d.printf("\nThis session\n%s\n", tw.Render())
		if bestNumber > 0 {
			d.printf("Best: game %d with %d/%d\n", bestNumber, best.Score, best.Total)
		}
	}
	d.printf("\nThank you for playing! Goodbye!\n\n")
}
