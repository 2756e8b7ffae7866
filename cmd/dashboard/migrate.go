package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the mutation log schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			if cfg.Database.IsSQLite() {
				db, err := database.New(&cfg.Database)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.AutoMigrate(); err != nil {
					return fmt.Errorf("auto migrate failed: %w", err)
				}
				logger.Info("sqlite schema migrated", "path", cfg.Database.SQLitePath)
				return nil
			}

			sqlDB, err := database.OpenPostgres(cfg.Database.URL())
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)
			if err := runner.WaitForDatabase(); err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return err
			}

			version, dirty, err := runner.GetMigrationStatus()
			if err != nil {
				return err
			}
			logger.Info("migrations applied", "version", version, "dirty", dirty)
			return nil
		},
	}
	return cmd
}
