package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want Label
		ok   bool
	}{
		{"A", LabelA, true},
		{" c ", LabelC, true},
		{"d\n", LabelD, true},
		{"b", LabelB, true},
		{"E", "", false},
		{"", "", false},
		{"AB", "", false},
		{"1", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseLabel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLabel(%q) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDefaultQuizIsValid(t *testing.T) {
	quiz := DefaultQuiz()
	if err := quiz.Validate(); err != nil {
		t.Fatalf("default quiz invalid: %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(quiz.Questions))
	}
}

func TestQuizValidateRejectsMalformed(t *testing.T) {
	if err := (Quiz{ID: "empty"}).Validate(); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}

	quiz := DefaultQuiz()
	quiz.Questions[1].Correct = "E"
	if err := quiz.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion for bad label, got %v", err)
	}

	quiz = DefaultQuiz()
	quiz.Questions[0].Options = quiz.Questions[0].Options[:3]
	if err := quiz.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion for 3 options, got %v", err)
	}

	quiz = DefaultQuiz()
	quiz.Questions[2].TimeLimit = 0
	if err := quiz.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion for zero limit, got %v", err)
	}
}

func TestWithTimeLimitCopies(t *testing.T) {
	quiz := DefaultQuiz()
	short := quiz.WithTimeLimit(3)
	if short.Questions[0].TimeLimit != 3 {
		t.Fatalf("expected overridden limit 3, got %d", short.Questions[0].TimeLimit)
	}
	if quiz.Questions[0].TimeLimit != 15 {
		t.Fatalf("original quiz mutated: %d", quiz.Questions[0].TimeLimit)
	}
	if quiz.WithTimeLimit(0).Questions[0].TimeLimit != 15 {
		t.Fatalf("zero override should keep limits")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{5, 5, "perfect"},
		{4, 5, "high"},
		{3, 5, "medium"},
		{2, 5, "low-medium"},
		{1, 5, "lowest"},
		{0, 5, "lowest"},
		{8, 10, "high"},
		{99, 100, "high"},
		{0, 0, "lowest"},
	}
	for _, tc := range tests {
		if got := BandFor(tc.score, tc.total); got.Name != tc.want {
			t.Errorf("BandFor(%d, %d) = %s, want %s", tc.score, tc.total, got.Name, tc.want)
		}
	}
}

func TestReportPercentage(t *testing.T) {
	r := NewReport("g1", 3, 5, time.Time{})
	if r.PercentageString() != "60.0" {
		t.Fatalf("expected 60.0, got %s", r.PercentageString())
	}
	if r.Band.Name != "medium" {
		t.Fatalf("expected medium band, got %s", r.Band.Name)
	}
	if got := NewReport("g2", 1, 3, time.Time{}).PercentageString(); got != "33.3" {
		t.Fatalf("expected 33.3, got %s", got)
	}
}

func TestFeedbackElapsedSeconds(t *testing.T) {
	f := Feedback{Elapsed: 2340 * time.Millisecond}
	if f.ElapsedSeconds() != "2.3" {
		t.Fatalf("expected 2.3, got %s", f.ElapsedSeconds())
	}
}
