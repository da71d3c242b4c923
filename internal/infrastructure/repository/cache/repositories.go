// Package cache wraps repositories with read-through caching. Writes made
// through a wrapper drop the keys they affect; edits made to the workbooks
// outside the service show up once entries expire.
package cache

import (
	"context"

	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	basecache "github.com/riskibarqy/football-scouting/internal/platform/cache"
	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[[]team.Team]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[[]team.Team]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := r.cache.GetOrLoad(ctx, "team:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, league string) ([]team.Team, error) {
	key := "team:league:" + textnorm.Key(league)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, league)
	})
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) ReplaceAll(ctx context.Context, teams []team.Team) error {
	if err := r.next.ReplaceAll(ctx, teams); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type SquadRepository struct {
	next  squad.Repository
	teams *basecache.Store[[]string]
	cache *basecache.Store[[]squad.Player]
}

func NewSquadRepository(next squad.Repository, teams *basecache.Store[[]string], cache *basecache.Store[[]squad.Player]) *SquadRepository {
	return &SquadRepository{next: next, teams: teams, cache: cache}
}

func (r *SquadRepository) ListTeams(ctx context.Context) ([]string, error) {
	items, err := r.teams.GetOrLoad(ctx, "squad:teams", r.next.ListTeams)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), items...), nil
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamName string) ([]squad.Player, error) {
	items, err := r.cache.GetOrLoad(ctx, squadKey(teamName), func(ctx context.Context) ([]squad.Player, error) {
		return r.next.ListByTeam(ctx, teamName)
	})
	if err != nil {
		return nil, err
	}
	return append([]squad.Player(nil), items...), nil
}

func (r *SquadRepository) ReplaceTeam(ctx context.Context, teamName string, players []squad.Player) error {
	if err := r.next.ReplaceTeam(ctx, teamName, players); err != nil {
		return err
	}
	r.cache.Delete(ctx, squadKey(teamName))
	r.teams.Delete(ctx, "squad:teams")
	return nil
}

func squadKey(teamName string) string {
	return "squad:team:" + textnorm.Key(teamName)
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store[[]player.Player]
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store[[]player.Player]) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := r.cache.GetOrLoad(ctx, "player:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

// ReportRepository caches the report lists only; every write clears both.
type ReportRepository struct {
	next       report.Repository
	matches    *basecache.Store[[]report.MatchReport]
	individual *basecache.Store[[]report.IndividualReport]
}

func NewReportRepository(next report.Repository, matches *basecache.Store[[]report.MatchReport], individual *basecache.Store[[]report.IndividualReport]) *ReportRepository {
	return &ReportRepository{next: next, matches: matches, individual: individual}
}

const (
	matchReportsKey      = "report:match"
	individualReportsKey = "report:individual"
)

func (r *ReportRepository) ListMatch(ctx context.Context) ([]report.MatchReport, error) {
	items, err := r.matches.GetOrLoad(ctx, matchReportsKey, r.next.ListMatch)
	if err != nil {
		return nil, err
	}
	return append([]report.MatchReport(nil), items...), nil
}

func (r *ReportRepository) AppendMatch(ctx context.Context, reports ...report.MatchReport) error {
	defer r.matches.Delete(ctx, matchReportsKey)
	return r.next.AppendMatch(ctx, reports...)
}

func (r *ReportRepository) UpdateMatch(ctx context.Context, key report.Key, fn func(report.MatchReport) (report.MatchReport, error)) (int, error) {
	defer r.matches.Delete(ctx, matchReportsKey)
	return r.next.UpdateMatch(ctx, key, fn)
}

func (r *ReportRepository) ListIndividual(ctx context.Context) ([]report.IndividualReport, error) {
	items, err := r.individual.GetOrLoad(ctx, individualReportsKey, r.next.ListIndividual)
	if err != nil {
		return nil, err
	}
	return append([]report.IndividualReport(nil), items...), nil
}

func (r *ReportRepository) AppendIndividual(ctx context.Context, reports ...report.IndividualReport) error {
	defer r.individual.Delete(ctx, individualReportsKey)
	return r.next.AppendIndividual(ctx, reports...)
}
