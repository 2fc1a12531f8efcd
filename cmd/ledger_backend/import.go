package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/spf13/cobra"
)

func newImportCommand(flags *rootFlags) *cobra.Command {
	var (
		profileName string
		accountName string
		preview     bool
	)

	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Import a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if accountName == "" {
				accountName = cfg.DefaultBankAccount
			}

			profiles, err := csvsource.NewRegistry(cfg.BankProfileDir)
			if err != nil {
				return err
			}
			profile, err := profiles.Lookup(profileName)
			if err != nil {
				return fmt.Errorf("%w (known profiles: %v)", err, profiles.Names())
			}
			parsed, err := csvsource.ParseFile(args[0], profile)
			if err != nil {
				return err
			}
			logger.Info("Parsed CSV statement",
				slog.String("path", args[0]),
				slog.String("profile", profile.Name),
				slog.Int("rows", len(parsed.Transactions)),
				slog.Int("skipped", parsed.Skipped),
			)

			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)
			svc := services.NewServiceContainer(store, services.WithDefaultBankAccount(cfg.DefaultBankAccount))

			meta := dto.ImportMeta{
				Filename:    filepath.Base(args[0]),
				BankConfig:  profile.Name,
				AccountName: accountName,
			}
			out := cmd.OutOrStdout()

			if preview {
				rows, err := svc.Import.Preview(cmd.Context(), meta, parsed.Transactions)
				if err != nil {
					return err
				}
				for _, row := range rows {
					marker := " "
					if row.IsDuplicate {
						marker = "D"
					}
					fmt.Fprintf(out, "%s %s %12s  %s\n", marker, row.Date.Format("2006-01-02"), row.Amount.StringFixed(2), row.Description)
				}
				return nil
			}

			result, err := svc.Import.Run(cmd.Context(), meta, parsed.Transactions)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Batch %d: %d imported, %d duplicates, %d rows, %d unparseable\n",
				result.BatchID, result.ImportedCount, result.DuplicateCount, result.TotalCount, parsed.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", csvsource.GenericProfile, "bank profile used to read the file")
	cmd.Flags().StringVar(&accountName, "account", "", "asset account to import into (defaults to DEFAULT_BANK_ACCOUNT)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show duplicates without importing")

	return cmd
}
