package main

import (
	"context"
	"log/slog"
	"os"

	"rewards/config"
	"rewards/internal/delivery"
	"rewards/internal/delivery/worker"
	"rewards/internal/delivery/worker/handler"
	"rewards/internal/domain/service"
	"rewards/internal/errors"
	logs "rewards/internal/infra/log"
	"rewards/internal/infra/notification"
	"rewards/internal/infra/persistence/postgres"
	"rewards/internal/infra/pubsub"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewMissionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
			newEventSubscriber,
		),
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service; notifications are skipped without configuration
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newEventSubscriber routes MissionCompleted events raised here back through the same usecase
func newEventSubscriber(events usecase.EventUsecase) service.EventSubscriber {
	return events
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMissionService,
			impl.NewEventService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
