package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/mockapi"
)

func mockAPICmd() *cobra.Command {
	var failureRate float64

	cmd := &cobra.Command{
		Use:   "mockapi",
		Short: "Run the upstream merchant API simulator",
		Long: `Serve generated merchants and transactions with the same envelope as the
real merchant API.

Examples:
  dashboard mockapi
  dashboard mockapi --failure-rate 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("failure-rate") {
				cfg.MockAPI.FailureRate = failureRate
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return startMockAPI(ctx, cfg, newLogger(cfg))
		},
	}

	cmd.Flags().Float64Var(&failureRate, "failure-rate", 0, "share of requests answered with a 503 envelope (0-1)")
	return cmd
}

func startMockAPI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	server := mockapi.NewServer(cfg.MockAPI, logger)
	return server.Start(ctx, ":"+cfg.MockAPI.Port)
}
