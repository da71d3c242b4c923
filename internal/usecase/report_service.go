package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ReportService struct {
	repo   report.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewReportService(repo report.Repository, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReportService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SubmitMatchReport validates and appends one report. An empty report date
// defaults to today.
func (s *ReportService) SubmitMatchReport(ctx context.Context, item report.MatchReport) (report.MatchReport, error) {
	items, err := s.SubmitMatchReports(ctx, []report.MatchReport{item})
	if err != nil {
		return report.MatchReport{}, err
	}
	return items[0], nil
}

// SubmitMatchReports validates every report before writing any of them.
func (s *ReportService) SubmitMatchReports(ctx context.Context, items []report.MatchReport) ([]report.MatchReport, error) {
	ctx, span := startSpan(ctx, "usecase.ReportService.SubmitMatchReports", attribute.Int("reports", len(items)))
	defer span.End()

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no reports to submit", ErrInvalidInput)
	}

	out := make([]report.MatchReport, 0, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ReportDate) == "" {
			item.ReportDate = s.now().Format(report.DateLayout)
		}
		if err := item.Validate(); err != nil {
			return nil, invalidReport(err, i, len(items))
		}
		out = append(out, item.Normalize())
	}

	if err := s.repo.AppendMatch(ctx, out...); err != nil {
		return nil, fmt.Errorf("append match reports: %w", err)
	}
	s.logger.InfoContext(ctx, "match reports submitted", "count", len(out), "scout", out[0].Scout)
	return out, nil
}

func (s *ReportService) SubmitIndividualReport(ctx context.Context, item report.IndividualReport) (report.IndividualReport, error) {
	ctx, span := startSpan(ctx, "usecase.ReportService.SubmitIndividualReport")
	defer span.End()

	if strings.TrimSpace(item.Date) == "" {
		item.Date = s.now().Format(report.DateLayout)
	}
	if err := item.Validate(); err != nil {
		return report.IndividualReport{}, invalidReport(err, 0, 1)
	}
	item = item.Normalize()

	if err := s.repo.AppendIndividual(ctx, item); err != nil {
		return report.IndividualReport{}, fmt.Errorf("append individual report: %w", err)
	}
	s.logger.InfoContext(ctx, "individual report submitted", "scout", item.Scout, "player", item.Player)
	return item, nil
}

func (s *ReportService) ListMatchReports(ctx context.Context, filter report.Filter) ([]report.MatchReport, error) {
	ctx, span := startSpan(ctx, "usecase.ReportService.ListMatchReports")
	defer span.End()

	items, err := s.repo.ListMatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match reports: %w", err)
	}
	return report.FilterMatch(items, filter), nil
}

func (s *ReportService) ListIndividualReports(ctx context.Context, filter report.Filter) ([]report.IndividualReport, error) {
	ctx, span := startSpan(ctx, "usecase.ReportService.ListIndividualReports")
	defer span.End()

	items, err := s.repo.ListIndividual(ctx)
	if err != nil {
		return nil, fmt.Errorf("list individual reports: %w", err)
	}
	return report.FilterIndividual(items, filter), nil
}

// UpdateMatchReport applies patch to every report addressed by key and
// returns how many changed. Duplicate submissions share a key and are
// updated together.
func (s *ReportService) UpdateMatchReport(ctx context.Context, key report.Key, patch report.MatchPatch) (int, error) {
	ctx, span := startSpan(ctx, "usecase.ReportService.UpdateMatchReport")
	defer span.End()

	if err := key.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if patch.Empty() {
		return 0, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := patch.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	n, err := s.repo.UpdateMatch(ctx, key, func(current report.MatchReport) (report.MatchReport, error) {
		return patch.Apply(current).Normalize(), nil
	})
	if err != nil {
		return 0, fmt.Errorf("update match reports: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no report for scout=%s match=%s player=%s", ErrNotFound, key.Scout, key.Match, key.Player)
	}
	s.logger.InfoContext(ctx, "match reports updated", "scout", key.Scout, "player", key.Player, "count", n)
	return n, nil
}

func (s *ReportService) SummarizeMatchReports(ctx context.Context, filter report.Filter) ([]report.PlayerSummary, error) {
	items, err := s.ListMatchReports(ctx, filter)
	if err != nil {
		return nil, err
	}
	return report.Summarize(items), nil
}

func invalidReport(err error, index, total int) error {
	var verr *report.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if total > 1 {
		return fmt.Errorf("%w: report %d: %w", ErrInvalidInput, index+1, verr)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
}
