package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/competition"
	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

type stubChampionshipSource struct {
	mu        sync.Mutex
	standings map[string][]standing.Standing
	schedules map[string][]fixture.Match
	errs      map[string]error
	calls     map[string]int
}

func newStubSource() *stubChampionshipSource {
	return &stubChampionshipSource{
		standings: map[string][]standing.Standing{},
		schedules: map[string][]fixture.Match{},
		errs:      map[string]error{},
		calls:     map[string]int{},
	}
}

func (s *stubChampionshipSource) FetchStandings(_ context.Context, pageURL, _ string) ([]standing.Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["standings "+pageURL]++
	if err := s.errs[pageURL]; err != nil {
		return nil, err
	}
	return s.standings[pageURL], nil
}

func (s *stubChampionshipSource) FetchSchedule(_ context.Context, pageURL, container string) ([]fixture.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["schedule "+pageURL]++
	if container != ".desktop-view" {
		return nil, fmt.Errorf("%w: unexpected container %s", ErrScrapeParse, container)
	}
	if err := s.errs[pageURL]; err != nil {
		return nil, err
	}
	return s.schedules[pageURL], nil
}

func newTestChampionshipService(t *testing.T, source ChampionshipSource) *ChampionshipService {
	t.Helper()
	catalog, err := competition.NewCatalog([]competition.Competition{
		{ID: "u21", Name: "Elite U-21", Caption: "Standing of Jawwy Elite League U-21", URL: "https://saff.test/u21"},
		{ID: "u19", Name: "Elite U-19", Caption: "Standing", URL: "https://saff.test/u19"},
		{ID: "u17", Name: "Elite U-17", Caption: "Standing", URL: "https://saff.test/u17"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewChampionshipService(catalog, source, ChampionshipConfig{
		ScheduleContainer: ".desktop-view",
		AllMatchesQuery:   "all=1",
		RefreshWorkers:    2,
		CacheTTL:          time.Minute,
	}, logging.NewNop())
}

func TestChampionshipService_StandingsStatuses(t *testing.T) {
	source := newStubSource()
	source.standings["https://saff.test/u21"] = []standing.Standing{{Rank: "1", Team: "Al-Nassr", GoalDifference: "-2"}}
	source.errs["https://saff.test/u19"] = fmt.Errorf("%w: connection refused", ErrScrapeFetch)
	source.errs["https://saff.test/u17"] = fmt.Errorf("%w: caption not found", ErrScrapeParse)
	service := newTestChampionshipService(t, source)
	ctx := context.Background()

	cases := map[string]ScrapeStatus{
		"u21": ScrapeOK,
		"u19": ScrapeFetchFailed,
		"u17": ScrapeParseFailed,
	}
	for id, want := range cases {
		got, err := service.Standings(ctx, id)
		if err != nil {
			t.Fatalf("%s: scrape failures must not be errors, got %v", id, err)
		}
		if got.Status != want {
			t.Fatalf("%s: expected %s, got %s", id, want, got.Status)
		}
		if want != ScrapeOK && (got.Error == "" || got.Items == nil) {
			t.Fatalf("%s: failure should carry message and empty items: %+v", id, got)
		}
	}
}

func TestChampionshipService_UnknownCompetition(t *testing.T) {
	service := newTestChampionshipService(t, newStubSource())
	if _, err := service.Schedule(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChampionshipService_CachesSuccessNotFailure(t *testing.T) {
	source := newStubSource()
	source.schedules["https://saff.test/u21?all=1"] = []fixture.Match{{Date: "2025-03-01", Home: "Al-Nassr", Away: "Al-Hilal"}}
	source.errs["https://saff.test/u19?all=1"] = fmt.Errorf("%w: 503", ErrScrapeFetch)
	service := newTestChampionshipService(t, source)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if got, _ := service.Schedule(ctx, "u21"); got.Status != ScrapeOK {
			t.Fatalf("expected ok, got %+v", got)
		}
		if got, _ := service.Schedule(ctx, "u19"); got.Status != ScrapeFetchFailed {
			t.Fatalf("expected fetch_failed, got %+v", got)
		}
	}
	if n := source.calls["schedule https://saff.test/u21?all=1"]; n != 1 {
		t.Fatalf("expected one fetch for cached page, got %d", n)
	}
	if n := source.calls["schedule https://saff.test/u19?all=1"]; n != 3 {
		t.Fatalf("failures must not be cached, got %d fetches", n)
	}
}

func TestChampionshipService_OverviewAndNoData(t *testing.T) {
	source := newStubSource()
	source.standings["https://saff.test/u21"] = []standing.Standing{{Rank: "1", Team: "Al-Nassr"}}
	service := newTestChampionshipService(t, source)

	got, err := service.Overview(context.Background(), "u21")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Competition.ID != "u21" || got.Standings.Status != ScrapeOK || got.Schedule.Status != ScrapeNoData {
		t.Fatalf("unexpected overview: %+v", got)
	}
	if len(got.Schedule.Items) != 0 || got.Schedule.Items == nil {
		t.Fatalf("no_data should carry an empty list, got %#v", got.Schedule.Items)
	}
}

func TestChampionshipService_RefreshAllRefetches(t *testing.T) {
	source := newStubSource()
	source.standings["https://saff.test/u21"] = []standing.Standing{{Rank: "1", Team: "Al-Nassr"}}
	service := newTestChampionshipService(t, source)
	ctx := context.Background()

	_, _ = service.Standings(ctx, "u21")
	outcomes, err := service.RefreshAll(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(outcomes) != 3 || outcomes[0].CompetitionID != "u17" || outcomes[2].CompetitionID != "u21" {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
	if outcomes[2].Standings != ScrapeOK {
		t.Fatalf("expected u21 standings ok, got %s", outcomes[2].Standings)
	}
	if n := source.calls["standings https://saff.test/u21"]; n != 2 {
		t.Fatalf("refresh should bypass cache, got %d fetches", n)
	}
}
