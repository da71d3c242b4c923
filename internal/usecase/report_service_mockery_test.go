package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	reportmock "github.com/riskibarqy/football-scouting/internal/mocks/domain/report"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func validDraft(player string) report.MatchReport {
	return report.MatchReport{
		Category:    "U-21",
		Scout:       "ana",
		Player:      player,
		Team:        "Al-Nassr",
		Match:       "Al-Nassr vs Al-Hilal",
		MatchDate:   "2025-03-01",
		Position:    "CM",
		Foot:        "Derecho",
		Performance: 4,
		Potential:   5,
		Narrative:   "Breaks lines with passes.",
		Conclusion:  "monitor",
	}
}

func TestReportService_SubmitMatchReport_NormalizesAndDefaultsDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := reportmock.NewRepository(t)
	service := NewReportService(repo, logging.NewNop())
	service.now = func() time.Time { return time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC) }

	repo.
		On("AppendMatch", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(r report.MatchReport) bool {
			return r.ReportDate == "2025-03-02" && r.Conclusion == report.ConclusionFollow && r.Foot == report.FootRight
		})).
		Return(nil).
		Once()

	got, err := service.SubmitMatchReport(ctx, validDraft("Pedri"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.ReportDate != "2025-03-02" {
		t.Fatalf("unexpected report date: %s", got.ReportDate)
	}
}

func TestReportService_SubmitMatchReports_InvalidWritesNothing(t *testing.T) {
	t.Parallel()

	repo := reportmock.NewRepository(t)
	service := NewReportService(repo, logging.NewNop())

	bad := validDraft("Gavi")
	bad.Performance = 0
	_, err := service.SubmitMatchReports(context.Background(), []report.MatchReport{validDraft("Pedri"), bad})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *report.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation details, got %v", err)
	}
	repo.AssertNotCalled(t, "AppendMatch")
}

func TestReportService_UpdateMatchReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	key := report.Key{Scout: "ana", Match: "Al-Nassr vs Al-Hilal", Player: "Pedri"}
	perf := 2
	patch := report.MatchPatch{Performance: &perf}

	t.Run("applies patch through repository", func(t *testing.T) {
		repo := reportmock.NewRepository(t)
		service := NewReportService(repo, logging.NewNop())

		var applied report.MatchReport
		repo.
			On("UpdateMatch", ctx, key, mock.Anything).
			Return(func(_ context.Context, _ report.Key, fn func(report.MatchReport) (report.MatchReport, error)) (int, error) {
				next, err := fn(validDraft("Pedri"))
				applied = next
				return 1, err
			}).
			Once()

		n, err := service.UpdateMatchReport(ctx, key, patch)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if n != 1 || applied.Performance != 2 || applied.Potential != 5 {
			t.Fatalf("unexpected update: n=%d report=%+v", n, applied)
		}
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		repo := reportmock.NewRepository(t)
		service := NewReportService(repo, logging.NewNop())
		repo.On("UpdateMatch", ctx, key, mock.Anything).Return(0, nil).Once()

		if _, err := service.UpdateMatchReport(ctx, key, patch); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rejects bad input before touching storage", func(t *testing.T) {
		repo := reportmock.NewRepository(t)
		service := NewReportService(repo, logging.NewNop())

		if _, err := service.UpdateMatchReport(ctx, report.Key{Scout: "ana"}, patch); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for incomplete key, got %v", err)
		}
		if _, err := service.UpdateMatchReport(ctx, key, report.MatchPatch{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for empty patch, got %v", err)
		}
		tooHigh := 6
		if _, err := service.UpdateMatchReport(ctx, key, report.MatchPatch{Potential: &tooHigh}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for out of range rating, got %v", err)
		}
		repo.AssertNotCalled(t, "UpdateMatch")
	})
}

func TestReportService_SummarizeMatchReports_Filters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := reportmock.NewRepository(t)
	service := NewReportService(repo, logging.NewNop())

	other := validDraft("Gavi")
	other.Scout = "luis"
	repo.On("ListMatch", ctx).Return([]report.MatchReport{validDraft("Pedri"), validDraft("Pedri"), other}, nil).Once()

	got, err := service.SummarizeMatchReports(ctx, report.Filter{Scout: "ANA"})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(got) != 1 || got[0].Player != "Pedri" || got[0].Reports != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}
