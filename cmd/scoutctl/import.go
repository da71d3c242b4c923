package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-scouting/internal/app"
	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/spreadsheet"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

func importSheetsCmd() *cobra.Command {
	var (
		dataDir     string
		withReports bool
	)
	cmd := &cobra.Command{
		Use:   "import-sheets",
		Short: "Copy the spreadsheet workbooks into Postgres",
		Long: "Replaces teams, squads and the player database in Postgres with the workbook contents.\n" +
			"Reports are append-only and are copied only with --reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(func(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
				if strings.TrimSpace(dataDir) == "" {
					dataDir = cfg.DataDir
				}
				return importSheets(ctx, cfg, logger, dataDir, withReports)
			})
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Workbook directory (default DATA_DIR)")
	cmd.Flags().BoolVar(&withReports, "reports", false, "Also append match and individual reports")
	return cmd
}

func importSheets(ctx context.Context, cfg config.Config, logger *logging.Logger, dataDir string, withReports bool) error {
	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	src := spreadsheet.NewStore(dataDir)

	teams, err := src.Teams().List(ctx)
	if err != nil {
		return err
	}
	if err := postgres.NewTeamRepository(db).ReplaceAll(ctx, teams); err != nil {
		return fmt.Errorf("import teams: %w", err)
	}
	logger.Info("teams imported", "count", len(teams))

	squads := src.Squads()
	squadTeams, err := squads.ListTeams(ctx)
	if err != nil {
		return err
	}
	dst := postgres.NewSquadRepository(db)
	for _, name := range squadTeams {
		players, err := squads.ListByTeam(ctx, name)
		if err != nil {
			return err
		}
		if err := dst.ReplaceTeam(ctx, name, players); err != nil {
			return fmt.Errorf("import squad %s: %w", name, err)
		}
		logger.Info("squad imported", "team", name, "players", len(players))
	}

	players, err := src.Players().List(ctx)
	if err != nil {
		return err
	}
	if err := postgres.NewPlayerRepository(db).ReplaceAll(ctx, players); err != nil {
		return fmt.Errorf("import player database: %w", err)
	}
	logger.Info("player database imported", "count", len(players))

	if !withReports {
		return nil
	}

	reports := postgres.NewReportRepository(db)
	matches, err := src.Reports().ListMatch(ctx)
	if err != nil {
		return err
	}
	if len(matches) > 0 {
		if err := reports.AppendMatch(ctx, matches...); err != nil {
			return fmt.Errorf("import match reports: %w", err)
		}
	}
	individual, err := src.Reports().ListIndividual(ctx)
	if err != nil {
		return err
	}
	if len(individual) > 0 {
		if err := reports.AppendIndividual(ctx, individual...); err != nil {
			return fmt.Errorf("import individual reports: %w", err)
		}
	}
	logger.Info("reports imported", "match", len(matches), "individual", len(individual))
	return nil
}
