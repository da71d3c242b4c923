package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-scouting/internal/domain/competition"
	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
	"github.com/riskibarqy/football-scouting/internal/platform/cache"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

// ScrapeStatus tells an empty page apart from a failed fetch or a page whose
// layout no longer matches.
type ScrapeStatus string

const (
	ScrapeOK          ScrapeStatus = "ok"
	ScrapeNoData      ScrapeStatus = "no_data"
	ScrapeFetchFailed ScrapeStatus = "fetch_failed"
	ScrapeParseFailed ScrapeStatus = "parse_failed"
)

type ScrapeResult[T any] struct {
	Status    ScrapeStatus `json:"status"`
	Items     []T          `json:"items"`
	Error     string       `json:"error,omitempty"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

type Overview struct {
	Competition competition.Competition        `json:"competition"`
	Standings   ScrapeResult[standing.Standing] `json:"standings"`
	Schedule    ScrapeResult[fixture.Match]     `json:"schedule"`
}

// RefreshOutcome reports one competition of a RefreshAll run.
type RefreshOutcome struct {
	CompetitionID string       `json:"competitionId"`
	Standings     ScrapeStatus `json:"standings"`
	Schedule      ScrapeStatus `json:"schedule"`
	DurationMs    int64        `json:"durationMs"`
}

type ChampionshipConfig struct {
	ScheduleContainer string
	AllMatchesQuery   string
	RefreshWorkers    int
	CacheTTL          time.Duration
}

type ChampionshipService struct {
	catalog   *competition.Catalog
	source    ChampionshipSource
	cfg       ChampionshipConfig
	standings *cache.Store[[]standing.Standing]
	schedules *cache.Store[[]fixture.Match]
	logger    *logging.Logger
	now       func() time.Time
}

func NewChampionshipService(catalog *competition.Catalog, source ChampionshipSource, cfg ChampionshipConfig, logger *logging.Logger) *ChampionshipService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.RefreshWorkers <= 0 {
		cfg.RefreshWorkers = 4
	}

	return &ChampionshipService{
		catalog:   catalog,
		source:    source,
		cfg:       cfg,
		standings: cache.NewStore[[]standing.Standing](cfg.CacheTTL),
		schedules: cache.NewStore[[]fixture.Match](cfg.CacheTTL),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ChampionshipService) ListCompetitions() []competition.Competition {
	return s.catalog.List()
}

// Standings never fails for scrape problems; those come back as a status.
// Only an unknown competition id is an error.
func (s *ChampionshipService) Standings(ctx context.Context, id string) (ScrapeResult[standing.Standing], error) {
	comp, err := s.competition(id)
	if err != nil {
		return ScrapeResult[standing.Standing]{}, err
	}
	return s.standingsFor(ctx, comp), nil
}

func (s *ChampionshipService) Schedule(ctx context.Context, id string) (ScrapeResult[fixture.Match], error) {
	comp, err := s.competition(id)
	if err != nil {
		return ScrapeResult[fixture.Match]{}, err
	}
	return s.scheduleFor(ctx, comp), nil
}

// Overview fetches standings and schedule concurrently.
func (s *ChampionshipService) Overview(ctx context.Context, id string) (Overview, error) {
	comp, err := s.competition(id)
	if err != nil {
		return Overview{}, err
	}

	out := Overview{Competition: comp}
	var wg conc.WaitGroup
	wg.Go(func() { out.Standings = s.standingsFor(ctx, comp) })
	wg.Go(func() { out.Schedule = s.scheduleFor(ctx, comp) })
	wg.Wait()
	return out, nil
}

// RefreshAll drops cached pages and re-scrapes every competition on a
// bounded worker pool.
func (s *ChampionshipService) RefreshAll(ctx context.Context) ([]RefreshOutcome, error) {
	ctx, span := startSpan(ctx, "usecase.ChampionshipService.RefreshAll")
	defer span.End()

	s.standings.Clear()
	s.schedules.Clear()

	items := s.catalog.List()
	if len(items) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(min(s.cfg.RefreshWorkers, len(items)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		out     = make([]RefreshOutcome, 0, len(items))
		workers sync.WaitGroup
	)
	for _, comp := range items {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshOutcome{
				CompetitionID: comp.ID,
				Standings:     s.standingsFor(ctx, comp).Status,
				Schedule:      s.scheduleFor(ctx, comp).Status,
				DurationMs:    time.Since(start).Milliseconds(),
			}

			mu.Lock()
			out = append(out, row)
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit refresh task: %w", err)
		}
	}
	workers.Wait()

	sort.Slice(out, func(i, j int) bool { return out[i].CompetitionID < out[j].CompetitionID })
	s.logger.InfoContext(ctx, "competitions refreshed", "count", len(out))
	return out, nil
}

func (s *ChampionshipService) competition(id string) (competition.Competition, error) {
	comp, ok := s.catalog.Get(id)
	if !ok {
		return competition.Competition{}, fmt.Errorf("%w: competition %s", ErrNotFound, id)
	}
	return comp, nil
}

func (s *ChampionshipService) standingsFor(ctx context.Context, comp competition.Competition) ScrapeResult[standing.Standing] {
	ctx, span := startSpan(ctx, "usecase.ChampionshipService.Standings", attribute.String("competition", comp.ID))
	defer span.End()

	items, err := s.standings.GetOrLoad(ctx, comp.ID, func(ctx context.Context) ([]standing.Standing, error) {
		return s.source.FetchStandings(ctx, comp.URL, comp.Caption)
	})
	return scrapeResult(ctx, s, comp, "standings", items, err)
}

func (s *ChampionshipService) scheduleFor(ctx context.Context, comp competition.Competition) ScrapeResult[fixture.Match] {
	ctx, span := startSpan(ctx, "usecase.ChampionshipService.Schedule", attribute.String("competition", comp.ID))
	defer span.End()

	pageURL := comp.ScheduleURL(s.cfg.AllMatchesQuery)
	items, err := s.schedules.GetOrLoad(ctx, comp.ID, func(ctx context.Context) ([]fixture.Match, error) {
		return s.source.FetchSchedule(ctx, pageURL, s.cfg.ScheduleContainer)
	})
	return scrapeResult(ctx, s, comp, "schedule", items, err)
}

func scrapeResult[T any](ctx context.Context, s *ChampionshipService, comp competition.Competition, kind string, items []T, err error) ScrapeResult[T] {
	res := ScrapeResult[T]{Items: items, FetchedAt: s.now().UTC()}
	if res.Items == nil {
		res.Items = []T{}
	}

	switch {
	case err == nil && len(items) == 0:
		res.Status = ScrapeNoData
	case err == nil:
		res.Status = ScrapeOK
	case errors.Is(err, ErrScrapeParse):
		res.Status = ScrapeParseFailed
	default:
		res.Status = ScrapeFetchFailed
	}
	if err != nil {
		res.Error = err.Error()
		s.logger.WarnContext(ctx, "scrape failed",
			"competition", comp.ID,
			"kind", kind,
			"status", string(res.Status),
			"url", comp.URL,
			"error", err,
		)
	}
	return res
}
