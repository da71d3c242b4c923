package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-scouting/external/fotmob"
	"github.com/riskibarqy/football-scouting/external/saff"
	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
)

func newSAFFClient(cfg config.Config, logger *logging.Logger) *saff.Client {
	retry := resilience.DefaultRetryPolicy()
	retry.Attempts = cfg.ScraperMaxRetries
	return saff.NewClient(saff.ClientConfig{
		Timeout:       cfg.ScraperTimeout,
		UserAgent:     cfg.ScraperUserAgent,
		RatePerSecond: cfg.ScraperRatePerSec,
		Retry:         retry,
		Logos:         team.NewLogoResolver(team.DefaultLogos),
		Logger:        logger,
	})
}

func standingsCmd() *cobra.Command {
	var pageURL, caption string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Scrape a league table and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(func(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
				rows, err := newSAFFClient(cfg, logger).FetchStandings(ctx, pageURL, caption)
				if err != nil {
					return err
				}
				logger.Info("standings scraped", "url", pageURL, "rows", len(rows))
				return printJSON(cmd.OutOrStdout(), rows)
			})
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "Championship page URL")
	cmd.Flags().StringVar(&caption, "caption", "", "Heading text that precedes the table")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("caption")
	return cmd
}

func scheduleCmd() *cobra.Command {
	var pageURL, container string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Scrape a match schedule and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(func(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
				if strings.TrimSpace(container) == "" {
					container = cfg.ScheduleContainer
				}
				matches, err := newSAFFClient(cfg, logger).FetchSchedule(ctx, pageURL, container)
				if err != nil {
					return err
				}
				logger.Info("schedule scraped", "url", pageURL, "matches", len(matches))
				return printJSON(cmd.OutOrStdout(), matches)
			})
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "Championship page URL, usually with all=1")
	cmd.Flags().StringVar(&container, "container", "", "CSS selector of the schedule container (default SCHEDULE_CONTAINER)")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newTokenSource(cfg config.Config, logger *logging.Logger) *fotmob.BrowserTokenSource {
	return fotmob.NewBrowserTokenSource(fotmob.BrowserConfig{
		PageURL:   cfg.FotMobTokenPageURL,
		Header:    cfg.FotMobTokenHeader,
		UserAgent: cfg.ScraperUserAgent,
		Timeout:   cfg.FotMobTokenTimeout,
		Logger:    logger,
	})
}

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Capture the squad provider's auth header with headless Chrome",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(func(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
				token, err := newTokenSource(cfg, logger).Token(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.FotMobTokenHeader, token)
				return err
			})
		},
	}
}

func squadCmd() *cobra.Command {
	var teamID int64
	cmd := &cobra.Command{
		Use:   "squad",
		Short: "Fetch a team's squad from the external provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(func(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
				retry := resilience.DefaultRetryPolicy()
				retry.Attempts = cfg.ScraperMaxRetries
				client := fotmob.NewClient(fotmob.ClientConfig{
					BaseURL:   cfg.FotMobBaseURL,
					UserAgent: cfg.ScraperUserAgent,
					Header:    cfg.FotMobTokenHeader,
					Timeout:   cfg.ScraperTimeout,
					TokenTTL:  cfg.FotMobTokenTTL,
					Retry:     retry,
					Tokens:    newTokenSource(cfg, logger),
					Logger:    logger,
				})
				members, err := client.TeamSquad(ctx, teamID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), members)
			})
		},
	}
	cmd.Flags().Int64Var(&teamID, "team", 0, "Provider team id")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}
