package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Household Ledger API
// @version 1.0
// @description Double-entry household bookkeeping with property equity tracking.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags override the matching environment settings when set.
type rootFlags struct {
	dbDriver   string
	sqlitePath string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Household double-entry ledger with property equity tracking",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.dbDriver, "db-driver", "", "storage driver, sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&flags.sqlitePath, "sqlite-path", "", "SQLite database file (overrides SQLITE_PATH)")

	rootCmd.AddCommand(
		newServeCommand(flags),
		newMigrateCommand(flags),
		newSeedCommand(flags),
		newImportCommand(flags),
		newTokenCommand(flags),
	)
	return rootCmd
}
