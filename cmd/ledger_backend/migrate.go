package main

import (
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			target := cfg.SQLitePath
			if cfg.DBDriver == config.DriverPostgres {
				target = redactURL(cfg.DatabaseURL)
			}
			logger.Info("Running database migrations", slog.String("driver", cfg.DBDriver), slog.String("target", target))
			return runMigrations(cfg)
		},
	}
}
