package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"rewards/internal/domain/entity"
	"rewards/internal/domain/service"

	"go.uber.org/fx"
)

// InProcessPublisher dispatches events synchronously to subscribers registered in the same process.
// Used by single-binary deployments and tests where no broker is available.
type InProcessPublisher struct {
	mu          sync.RWMutex
	subscribers []service.EventSubscriber
	logger      *slog.Logger
}

// NewInProcessPublisher creates a publisher with no subscribers
func NewInProcessPublisher(logger *slog.Logger) *InProcessPublisher {
	return &InProcessPublisher{logger: logger}
}

// RegisterSubscriber adds a consumer. Subscribers are called in registration order.
func (p *InProcessPublisher) RegisterSubscriber(subscriber service.EventSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = append(p.subscribers, subscriber)
}

// Publish hands the event to every subscriber and returns the first failure.
// A failing subscriber does not stop delivery to the rest.
func (p *InProcessPublisher) Publish(ctx context.Context, event *entity.DomainEvent) error {
	p.mu.RLock()
	subscribers := make([]service.EventSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	var firstErr error
	for _, subscriber := range subscribers {
		if err := subscriber.HandleEvent(ctx, event); err != nil {
			p.logger.Warn("[InProcessPubSub] Subscriber failed",
				slog.String("event", event.Name),
				slog.String("event_id", event.ID.String()),
				slog.Any("error", err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close drops all subscribers
func (p *InProcessPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = nil

	return nil
}

// subscriberRegistrar is implemented by publishers that deliver in-process.
type subscriberRegistrar interface {
	RegisterSubscriber(subscriber service.EventSubscriber)
}

// SubscribeParams holds the dependencies of RegisterSubscriber, injected by Fx
type SubscribeParams struct {
	fx.In

	Publisher  service.EventPublisher
	Subscriber service.EventSubscriber `optional:"true"`
	Logger     *slog.Logger
}

// RegisterSubscriber connects the event consumer to an in-process publisher.
// It runs as an fx.Invoke so the consumer can itself depend on the publisher.
func RegisterSubscriber(params SubscribeParams) {
	registrar, ok := params.Publisher.(subscriberRegistrar)
	if !ok || params.Subscriber == nil {
		return
	}

	registrar.RegisterSubscriber(params.Subscriber)
	params.Logger.Info("Registered in-process event subscriber")
}
