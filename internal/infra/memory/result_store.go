package memory

import (
	"sync"

	"github.com/kvltn8/trivia-cli-game/internal/domain"
)

// ResultStore is an in-memory implementation of app.ResultRecorder.
// Reports live only as long as the process.
type ResultStore struct {
	mu      sync.RWMutex
	reports []domain.Report
	index   map[string]int
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		index: make(map[string]int),
	}
}

// Record appends a finished game; recording the same game ID again replaces it in place.
func (s *ResultStore) Record(report domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[report.GameID]; ok {
		s.reports[i] = report
		return
	}
	s.index[report.GameID] = len(s.reports)
	s.reports = append(s.reports, report)
}

// History returns reports in the order the games were recorded.
func (s *ResultStore) History() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Report(nil), s.reports...)
}

// Best returns the highest-percentage report, earliest first on ties.
func (s *ResultStore) Best() (domain.Report, bool) {
	history := s.History()
	if len(history) == 0 {
		return domain.Report{}, false
	}
	best := history[0]
	for _, r := range history[1:] {
		if r.Percentage() > best.Percentage() {
			best = r
		}
	}
	return best, true
}
