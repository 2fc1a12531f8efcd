package main

import (
	"fmt"

	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/demo"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newSeedCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo property owned by Alice and Bob",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newLogger()
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			svc := services.NewServiceContainer(store, services.WithDefaultBankAccount(cfg.DefaultBankAccount))
			result, err := demo.Seed(cmd.Context(), svc)
			if err != nil {
				return err
			}

			equity, err := svc.Equity.Calculate(cmd.Context(), result.PropertyID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %q (property %d)\n", demo.PropertyName, result.PropertyID)
			for _, oe := range equity {
				fmt.Fprintf(out, "  %-8s %6s%%  %12s\n", oe.OwnerName, utils.FormatPercent(oe.OwnershipPct), utils.FormatAmount(oe.EquityAmount))
			}
			return nil
		},
	}
}
