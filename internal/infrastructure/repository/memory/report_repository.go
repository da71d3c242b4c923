package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
)

type ReportRepository struct {
	mu         sync.RWMutex
	matches    []report.MatchReport
	individual []report.IndividualReport
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (r *ReportRepository) ListMatch(_ context.Context) ([]report.MatchReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]report.MatchReport(nil), r.matches...), nil
}

func (r *ReportRepository) AppendMatch(_ context.Context, reports ...report.MatchReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append(r.matches, reports...)
	return nil
}

// UpdateMatch applies fn to a copy so a failing fn leaves every row as it was.
func (r *ReportRepository) UpdateMatch(_ context.Context, key report.Key, fn func(report.MatchReport) (report.MatchReport, error)) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append([]report.MatchReport(nil), r.matches...)
	updated := 0
	for i := range next {
		if !key.Matches(next[i]) {
			continue
		}
		item, err := fn(next[i])
		if err != nil {
			return 0, err
		}
		next[i] = item
		updated++
	}
	if updated > 0 {
		r.matches = next
	}
	return updated, nil
}

func (r *ReportRepository) ListIndividual(_ context.Context) ([]report.IndividualReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]report.IndividualReport(nil), r.individual...), nil
}

func (r *ReportRepository) AppendIndividual(_ context.Context, reports ...report.IndividualReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.individual = append(r.individual, reports...)
	return nil
}
