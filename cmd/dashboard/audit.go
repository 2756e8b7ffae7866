package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/database"
	"merchant-dashboard/internal/repositories"
	"merchant-dashboard/internal/services"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect or prune the mutation log",
	}
	cmd.AddCommand(auditSummaryCmd())
	cmd.AddCommand(auditPurgeCmd())
	return cmd
}

func openMutationLogs() (services.MutationLogServiceInterface, func(), error) {
	cfg := config.Load()
	logger := newLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, nil, err
	}
	logs := services.NewMutationLogService(repositories.NewMutationLogRepository(db.DB), logger)
	return logs, func() { db.Close() }, nil
}

func auditSummaryCmd() *cobra.Command {
	var since time.Duration

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count submitted mutations per outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, closeDB, err := openMutationLogs()
			if err != nil {
				return err
			}
			defer closeDB()

			counts, err := logs.OutcomeCounts(time.Now().Add(-since))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(counts)
		},
	}

	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "look back this far")
	return cmd
}

func auditPurgeCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete mutation log entries older than --older-than",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}

			logs, closeDB, err := openMutationLogs()
			if err != nil {
				return err
			}
			defer closeDB()

			deleted, err := logs.Purge(olderThan)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d mutation log entries\n", deleted)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "retention window")
	return cmd
}
