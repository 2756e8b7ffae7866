package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"merchant-dashboard/internal/config"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Merchant dashboard - polls the merchant API and serves live merchant and transaction views",
		Version: Version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(mockAPICmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(auditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger installs the process-wide logger. Production logs are JSON.
func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
