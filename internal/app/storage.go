package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	cacherepo "github.com/riskibarqy/football-scouting/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/spreadsheet"
	basecache "github.com/riskibarqy/football-scouting/internal/platform/cache"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

type repositories struct {
	teams   team.Repository
	squads  squad.Repository
	players player.Repository
	reports report.Repository
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	noop := func() error { return nil }

	var repos repositories
	closeFn := noop
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = repositories{
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			squads:  memory.NewSquadRepository(memory.SeedSquads()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			reports: memory.NewReportRepository(),
		}
	case config.StoragePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return repositories{}, noop, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, noop, fmt.Errorf("bootstrap seed: %w", err)
		}
		repos = repositories{
			teams:   postgres.NewTeamRepository(db),
			squads:  postgres.NewSquadRepository(db),
			players: postgres.NewPlayerRepository(db),
			reports: postgres.NewReportRepository(db),
		}
		closeFn = db.Close
	case config.StorageSpreadsheet:
		store := spreadsheet.NewStore(cfg.DataDir)
		repos = repositories{
			teams:   store.Teams(),
			squads:  store.Squads(),
			players: store.Players(),
			reports: store.Reports(),
		}
	default:
		return repositories{}, noop, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	logger.Info("storage ready", "driver", cfg.StorageDriver, "cache_enabled", cfg.CacheEnabled)
	if !cfg.CacheEnabled {
		return repos, closeFn, nil
	}
	return withCache(repos, cfg), closeFn, nil
}

func withCache(repos repositories, cfg config.Config) repositories {
	return repositories{
		teams: cacherepo.NewTeamRepository(repos.teams, basecache.NewStore[[]team.Team](cfg.CacheTTL)),
		squads: cacherepo.NewSquadRepository(
			repos.squads,
			basecache.NewStore[[]string](cfg.CacheTTL),
			basecache.NewStore[[]squad.Player](cfg.CacheTTL),
		),
		players: cacherepo.NewPlayerRepository(repos.players, basecache.NewStore[[]player.Player](cfg.CacheTTL)),
		reports: cacherepo.NewReportRepository(
			repos.reports,
			basecache.NewStore[[]report.MatchReport](cfg.CacheTTL),
			basecache.NewStore[[]report.IndividualReport](cfg.CacheTTL),
		),
	}
}
