package main

import (
	"context"
	"fmt"

	"rewards/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newVouchersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vouchers",
		Short: "Voucher maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "void <voucher-id>",
		Short: "Make a voucher permanently unusable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voucherID, err := parseUUIDArg("voucher-id", args[0])
			if err != nil {
				return err
			}

			var vouchers usecase.VoucherUsecase

			return runApp(cmd.Context(), opts.Timeout, func(ctx context.Context) error {
				if err := vouchers.Void(ctx, voucherID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "voucher %s voided\n", voucherID)

				return nil
			}, infraOptions(), usecaseOptions(), fx.Populate(&vouchers))
		},
	})

	return cmd
}
