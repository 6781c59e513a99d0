package usecase

import (
	"context"

	"rewards/internal/domain/entity"
)

// EventUsecase consumes domain events delivered by the event bus
type EventUsecase interface {
	// HandleEvent feeds the mission tracker and sends user notifications
	HandleEvent(ctx context.Context, event *entity.DomainEvent) error
}
