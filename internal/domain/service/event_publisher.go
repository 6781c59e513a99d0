package service

import (
	"context"

	"rewards/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to the event bus.
// Callers publish only after the producing transaction committed.
type EventPublisher interface {
	// Publish delivers the event to the bus.
	Publish(ctx context.Context, event *entity.DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventSubscriber consumes domain events delivered by the bus.
type EventSubscriber interface {
	HandleEvent(ctx context.Context, event *entity.DomainEvent) error
}
