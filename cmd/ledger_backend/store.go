package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/household_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/household_ledger/migrations"
	"github.com/SscSPs/household_ledger/pkg/database"
)

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// loadConfig reads the environment and applies the persistent flags on top.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.dbDriver != "" {
		os.Setenv("DB_DRIVER", flags.dbDriver)
	}
	if flags.sqlitePath != "" {
		os.Setenv("SQLITE_PATH", flags.sqlitePath)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runMigrations(cfg *config.Config) error {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return database.RunPostgresMigrations(cfg.DatabaseURL, migrations.Postgres, migrations.PostgresDir)
	default:
		return database.RunSQLiteMigrations(cfg.SQLitePath, migrations.SQLite, migrations.SQLiteDir)
	}
}

// openStore migrates the configured database and returns a store over it.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.Store, error) {
	slog.Info("Running database migrations", slog.String("driver", cfg.DBDriver))
	if err := runMigrations(cfg); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return pgsql.NewStore(pool, cfg.BusyTimeout), nil
	default:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath, cfg.BusyTimeout)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(db), nil
	}
}

func closeStore(store portsrepo.Store) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close store", slog.String("error", err.Error()))
	}
}

func redactURL(raw string) string {
	if at := strings.LastIndex(raw, "@"); at >= 0 {
		if scheme := strings.Index(raw, "://"); scheme >= 0 && scheme < at {
			return raw[:scheme+3] + "***" + raw[at:]
		}
	}
	return raw
}
