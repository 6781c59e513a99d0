package main

import (
	"context"
	"time"

	"rewards/config"
	"rewards/internal/domain/service"
	"rewards/internal/errors"
	"rewards/internal/infra/auth"
	"rewards/internal/infra/idgen"
	logs "rewards/internal/infra/log"
	"rewards/internal/infra/payment"
	"rewards/internal/infra/persistence/postgres"
	"rewards/internal/infra/pubsub"
	"rewards/internal/infra/qrcode"
	"rewards/internal/usecase"
	"rewards/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Timeout time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rewardsctl",
		Short:         "Operations CLI for the rewards service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "upper bound for the whole command")

	cmd.AddCommand(newClaimsCommand(opts))
	cmd.AddCommand(newVouchersCommand(opts))
	cmd.AddCommand(newMissionsCommand(opts))
	cmd.AddCommand(newTokenCommand())
	cmd.AddCommand(newMigrateCommand(opts))

	return cmd
}

// infraOptions are the providers every database-backed command shares.
func infraOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
	)
}

// usecaseOptions wires the usecases exactly as the API does, minus the HTTP surface.
func usecaseOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewClaimRepository,
			postgres.NewVoucherRepository,
			postgres.NewPointLedgerRepository,
			postgres.NewComponentLedgerRepository,
			postgres.NewMissionRepository,
			auth.NewBcryptHasher,
			idgen.NewOrderNumberGenerator,
			func(cfg *config.Config) service.QRCodeService {
				if cfg.QRCode == nil {
					return qrcode.NewQRCodeService(0, "")
				}

				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			},
			func(events usecase.EventUsecase) service.EventSubscriber {
				return events
			},
			impl.NewClaimService,
			impl.NewVoucherService,
			impl.NewMissionService,
			impl.NewEventService,
		),
		payment.Module,
		pubsub.Module,
	)
}

// runApp starts an fx app built from options, runs fn, then stops the app so
// publishers flush and connections close.
func runApp(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error, options ...fx.Option) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
