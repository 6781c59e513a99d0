package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/service"
	"rewards/internal/infra/metrics"
	"rewards/internal/usecase"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type eventService struct {
	missions usecase.MissionUsecase
	notifier service.NotificationService
	logger   *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Missions usecase.MissionUsecase
	Notifier service.NotificationService `optional:"true"`
	Logger   *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		missions: params.Missions,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// userTopic is the push topic every device of the user subscribes to.
func userTopic(event *entity.DomainEvent) string {
	return "user-" + event.UserID.String()
}

// HandleEvent feeds the mission tracker and then notifies the user. A failed
// notification never fails the event.
func (srv *eventService) HandleEvent(ctx context.Context, event *entity.DomainEvent) error {
	if event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event", event.Name),
		slog.String("eventID", event.ID.String()),
		slog.String("userID", event.UserID.String()),
	)

	ctx, span := startSpan(ctx, "EventService.HandleEvent", attribute.String("event", event.Name))

	err := srv.missions.HandleEvent(ctx, event)
	metrics.EventsConsumedTotal.WithLabelValues(event.Name, metrics.Outcome(err)).Inc()
	endSpan(span, err)

	if err != nil {
		logger.Error("Failed to track event for missions", slog.Any("error", err))

		return err
	}

	srv.notify(ctx, logger, event)

	return nil
}

func (srv *eventService) notify(ctx context.Context, logger *slog.Logger, event *entity.DomainEvent) {
	if srv.notifier == nil {
		return
	}

	title, body, ok := notificationText(event)
	if !ok {
		return
	}

	data := map[string]string{"event": event.Name}
	for k, v := range event.Payload {
		data[k] = v
	}

	if err := srv.notifier.SendToTopic(ctx, userTopic(event), title, body, data); err != nil {
		logger.Warn("Failed to send event notification", slog.Any("error", err))
	}
}

func notificationText(event *entity.DomainEvent) (title, body string, ok bool) {
	switch event.Name {
	case entity.EventClaimed:
		if event.Payload["status"] == entity.ClaimStatusAwaitPayment.String() {
			return "Offer reserved", "Complete your payment to receive the voucher.", true
		}

		return "Offer claimed", "Your voucher is ready to use.", true
	case entity.EventRedeemed:
		return "Voucher redeemed", "Enjoy your offer!", true
	case entity.EventMissionCompleted:
		if event.Payload["disbursed"] == "true" {
			return "Mission completed", "Your reward has been added to your account.", true
		}

		return "Mission completed", fmt.Sprintf("Claim your reward for mission %s.", event.Payload["mission_id"]), true
	default:
		return "", "", false
	}
}
