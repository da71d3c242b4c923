// Command scoutctl runs one-off scouting tasks outside the API.
//
// Usage:
//
//	scoutctl standings --url https://saff.com.sa/en/championship.php?id=283 --caption "Standing of Jawwy Elite League U-21"
//	scoutctl schedule --url "https://saff.com.sa/en/championship.php?id=283&all=1"
//	scoutctl token
//	scoutctl squad --team 8634
//	scoutctl import-sheets --data-dir ./data --reports
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "scoutctl",
		Short:         "Football scouting maintenance CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(standingsCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(tokenCmd())
	root.AddCommand(squadCmd())
	root.AddCommand(importSheetsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runWithConfig loads configuration and a stderr logger, then runs fn under
// a context cancelled on SIGINT or SIGTERM.
func runWithConfig(fn func(ctx context.Context, cfg config.Config, logger *logging.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Service: "scoutctl", Env: cfg.AppEnv})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return fn(ctx, cfg, logger)
}

func printJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
