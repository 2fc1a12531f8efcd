package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand(flags *rootFlags) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return errors.New("AUTH_SECRET is not set, the API does not require tokens")
			}
			if ttl <= 0 {
				ttl = cfg.AuthTokenTTL
			}
			token, err := utils.GenerateJWT(subject, cfg.AuthSecret, ttl, cfg.AuthIssuer)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "household", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to AUTH_TOKEN_TTL)")

	return cmd
}
