package app

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/football-scouting/external/fotmob"
	"github.com/riskibarqy/football-scouting/external/saff"
	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/domain/competition"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-scouting/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

// NewHTTPServer wires storage, scrapers and services into the API server.
// The returned cleanup releases storage connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	credentials, err := usecase.ParseCredentials(cfg.ScoutCredentials)
	if err != nil {
		return nil, nil, fmt.Errorf("parse scout credentials: %w", err)
	}
	if len(credentials) == 0 {
		logger.Warn("no scout credentials configured; every login will be rejected")
	}

	catalog, err := competition.NewCatalog(cfg.Competitions)
	if err != nil {
		return nil, nil, fmt.Errorf("build competition catalog: %w", err)
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	logos := team.NewLogoResolver(team.DefaultLogos)
	reportSvc := usecase.NewReportService(repos.reports, logger)
	sessionSvc := usecase.NewSessionService(
		memory.NewSessionRepository(cfg.SessionTTL),
		reportSvc,
		credentials,
		nil,
		cfg.SessionTTL,
		logger,
	)
	championshipSvc := usecase.NewChampionshipService(catalog, newSAFFClient(cfg, logos, logger), usecase.ChampionshipConfig{
		ScheduleContainer: cfg.ScheduleContainer,
		AllMatchesQuery:   cfg.ScheduleAllMatchesQuery,
		RefreshWorkers:    cfg.ScraperRefreshWorkers,
		CacheTTL:          cfg.CacheTTL,
	}, logger)

	handler := httpapi.NewHandler(
		sessionSvc,
		usecase.NewTeamService(repos.teams, logos),
		usecase.NewSquadService(repos.squads, logger),
		usecase.NewPlayerService(repos.players),
		reportSvc,
		championshipSvc,
		usecase.NewExternalSquadService(newSquadSource(cfg, logger), logger),
		logger,
	)
	router := httpapi.NewRouter(handler, sessionSvc, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func scraperRetry(cfg config.Config) resilience.RetryPolicy {
	policy := resilience.DefaultRetryPolicy()
	policy.Attempts = cfg.ScraperMaxRetries
	return policy
}

func newSAFFClient(cfg config.Config, logos *team.LogoResolver, logger *logging.Logger) *saff.Client {
	return saff.NewClient(saff.ClientConfig{
		HTTPClient:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		Timeout:       cfg.ScraperTimeout,
		UserAgent:     cfg.ScraperUserAgent,
		RatePerSecond: cfg.ScraperRatePerSec,
		Retry:         scraperRetry(cfg),
		Breaker: resilience.BreakerConfig{
			Enabled:          cfg.ScraperCircuitEnabled,
			FailureThreshold: cfg.ScraperCircuitFailures,
			OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
			HalfOpenProbes:   cfg.ScraperCircuitHalfOpenReq,
		},
		Logos:  logos,
		Logger: logger.With("component", "saff"),
	})
}

// newSquadSource returns nil when the provider is disabled so the service
// answers with a dependency error instead of calling out.
func newSquadSource(cfg config.Config, logger *logging.Logger) usecase.ExternalSquadSource {
	if !cfg.FotMobEnabled {
		return nil
	}

	tokens := fotmob.NewBrowserTokenSource(fotmob.BrowserConfig{
		PageURL:   cfg.FotMobTokenPageURL,
		Header:    cfg.FotMobTokenHeader,
		UserAgent: cfg.ScraperUserAgent,
		Timeout:   cfg.FotMobTokenTimeout,
		Logger:    logger.With("component", "fotmob_token"),
	})
	return fotmob.NewClient(fotmob.ClientConfig{
		BaseURL:   cfg.FotMobBaseURL,
		UserAgent: cfg.ScraperUserAgent,
		Header:    cfg.FotMobTokenHeader,
		Timeout:   cfg.ScraperTimeout,
		TokenTTL:  cfg.FotMobTokenTTL,
		Retry:     scraperRetry(cfg),
		Tokens:    tokens,
		Logger:    logger.With("component", "fotmob"),
	})
}
