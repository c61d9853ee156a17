package domain

import (
	"fmt"
	"time"
)

// Band is a percentage bucket closed at its lower bound.
type Band struct {
	Name   string
	Min    int // percent
	Remark string
}

// Bands are evaluated in order; the first match wins.
var Bands = []Band{
	{Name: "perfect", Min: 100, Remark: "PERFECT SCORE! Outstanding performance!"},
	{Name: "high", Min: 80, Remark: "Excellent work! Great knowledge!"},
	{Name: "medium", Min: 60, Remark: "Good job! Keep practicing!"},
	{Name: "low-medium", Min: 40, Remark: "Not bad! Review the topics and try again!"},
	{Name: "lowest", Min: 0, Remark: "Keep learning! Practice makes perfect!"},
}

// BandFor picks the band for score out of total using integer math,
// so 3/5 lands exactly on 60 rather than a float just below it.
func BandFor(score, total int) Band {
	if total <= 0 {
		return Bands[len(Bands)-1]
	}
	for _, b := range Bands {
		if score*100 >= b.Min*total {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// Report is the end-of-game summary.
type Report struct {
	GameID     string
	Score      int
	Total      int
	Band       Band
	FinishedAt time.Time
}

func NewReport(gameID string, score, total int, finishedAt time.Time) Report {
	return Report{
		GameID:     gameID,
		Score:      score,
		Total:      total,
		Band:       BandFor(score, total),
		FinishedAt: finishedAt,
	}
}

// Percentage returns score/total*100.
func (r Report) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score*100) / float64(r.Total)
}

// PercentageString formats the percentage with one decimal place.
func (r Report) PercentageString() string {
	return fmt.Sprintf("%.1f", r.Percentage())
}
