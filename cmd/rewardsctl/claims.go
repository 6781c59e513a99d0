package main

import (
	"context"
	"fmt"
	"time"

	"rewards/config"
	"rewards/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newClaimsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Claim maintenance",
	}

	cmd.AddCommand(newClaimsExpireCommand(opts))

	return cmd
}

func newClaimsExpireCommand(opts *rootOptions) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Cancel unpaid fiat claims and release their vouchers",
		Long: `Cancel every AWAIT_PAYMENT claim older than --older-than and return its
voucher to the pool. Defaults to offers.claimTimeout from the configuration.
Meant to run on a schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				claims usecase.ClaimUsecase
				cfg    *config.Config
			)

			return runApp(cmd.Context(), opts.Timeout, func(ctx context.Context) error {
				timeout := olderThan
				if timeout <= 0 {
					timeout = cfg.Offers.ClaimTimeout
				}

				cancelled, err := claims.ExpirePending(ctx, timeout)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "cancelled %d claim(s) older than %s\n", cancelled, timeout)

				return nil
			}, infraOptions(), usecaseOptions(), fx.Populate(&claims, &cfg))
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "age after which an unpaid claim is cancelled")

	return cmd
}
