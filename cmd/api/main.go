package main

import (
	"context"
	"log/slog"
	"os"

	"rewards/config"
	"rewards/internal/delivery"
	"rewards/internal/delivery/api"
	"rewards/internal/delivery/api/middleware"
	"rewards/internal/delivery/api/router/handler"
	"rewards/internal/domain/service"
	"rewards/internal/errors"
	"rewards/internal/infra/auth"
	"rewards/internal/infra/idgen"
	logs "rewards/internal/infra/log"
	"rewards/internal/infra/notification"
	"rewards/internal/infra/payment"
	"rewards/internal/infra/persistence/postgres"
	"rewards/internal/infra/pubsub"
	"rewards/internal/infra/qrcode"
	"rewards/internal/infra/tracing"
	"rewards/internal/usecase"
	"rewards/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		tracing.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewClaimRepository,
			postgres.NewVoucherRepository,
			postgres.NewPointLedgerRepository,
			postgres.NewComponentLedgerRepository,
			postgres.NewMissionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			idgen.NewOrderNumberGenerator,
			newFirebaseService,
			newQRCodeService,
			newEventSubscriber,
		),
		payment.Module,
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newEventSubscriber lets the in-process bus feed events straight to the event usecase
func newEventSubscriber(events usecase.EventUsecase) service.EventSubscriber {
	return events
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClaimService,
			impl.NewRedemptionService,
			impl.NewVoucherService,
			impl.NewPointService,
			impl.NewComponentService,
			impl.NewMissionService,
			impl.NewEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOfferHandler,
			handler.NewPointHandler,
			handler.NewMissionHandler,
			handler.NewAdminHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
