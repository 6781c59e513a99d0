package impl

import (
	"context"
	"log/slog"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/lifecycle"
	"rewards/internal/domain/service"
	"rewards/internal/infra/metrics"
)

// publishAfterCommit hands a committed fact to the event bus. The originating
// operation already succeeded, so failures are logged and counted, not returned.
func publishAfterCommit(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.DomainEvent) {
	if publisher == nil || event == nil {
		return
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	pubCtx, cancel := context.WithTimeout(deliverycontext.Detach(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := publisher.Publish(pubCtx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.Name, "error").Inc()
		logger.Error("Failed to publish event",
			slog.String("event", event.Name),
			slog.String("eventID", event.ID.String()),
			slog.String("userID", event.UserID.String()),
			slog.Any("error", err),
		)

		return
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.Name, "success").Inc()
}
