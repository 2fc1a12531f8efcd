package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// RunSQLiteMigrations applies every pending up migration found in dir of fsys
// to the SQLite database at path.
func RunSQLiteMigrations(path string, fsys fs.FS, dir string) error {
	db, err := sql.Open("sqlite", SQLiteDSN(path, DefaultBusyTimeout))
	if err != nil {
		return fmt.Errorf("failed to open sqlite database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	return runMigrations(fsys, dir, "sqlite", driver)
}

// RunPostgresMigrations applies every pending up migration found in dir of
// fsys to the PostgreSQL database at databaseURL.
func RunPostgresMigrations(databaseURL string, fsys fs.FS, dir string) error {
	// A plain database/sql handle, separate from the application pool.
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres migration driver: %w", err)
	}
	return runMigrations(fsys, dir, "pgx5", driver)
}

func runMigrations(fsys fs.FS, dir, databaseName string, driver database.Driver) error {
	source, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	// Close reports a dirty state left behind by a failed migration.
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply", slog.String("database", databaseName))
	} else {
		slog.Info("Database migrations applied", slog.String("database", databaseName))
	}
	return nil
}
