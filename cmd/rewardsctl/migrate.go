package main

import (
	"context"
	"fmt"

	"rewards/internal/infra/persistence/model"
	"rewards/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the rewards tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			return runApp(cmd.Context(), opts.Timeout, func(ctx context.Context) error {
				if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "migrated %d table(s)\n", len(model.All()))

				return nil
			}, infraOptions(), fx.Populate(&db))
		},
	}
}
