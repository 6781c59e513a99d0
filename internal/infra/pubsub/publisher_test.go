package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rewards/config"
	"rewards/internal/domain/constants"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/service"
	mocks "rewards/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *entity.DomainEvent {
	return &entity.DomainEvent{
		ID:        uuid.New(),
		Name:      entity.EventClaimed,
		UserID:    uuid.New(),
		RequestID: "req-1",
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	event := newTestEvent()

	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newTestLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, PushSubscription, received.Subscription)

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, entity.EventClaimed, decoded.Name)
}

func TestLocalHTTPPublisher_Publish_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newTestLogger())

	err := publisher.Publish(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestInProcessPublisher_Publish(t *testing.T) {
	event := newTestEvent()
	first := mocks.NewMockEventSubscriber(t)
	second := mocks.NewMockEventSubscriber(t)

	first.EXPECT().HandleEvent(mock.Anything, event).Return(errors.New("first failed")).Once()
	second.EXPECT().HandleEvent(mock.Anything, event).Return(nil).Once()

	publisher := NewInProcessPublisher(newTestLogger())
	publisher.RegisterSubscriber(first)
	publisher.RegisterSubscriber(second)

	err := publisher.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")

	require.NoError(t, publisher.Close())
	assert.NoError(t, publisher.Publish(context.Background(), event))
}

func TestRegisterSubscriber(t *testing.T) {
	subscriber := mocks.NewMockEventSubscriber(t)

	t.Run("in-process publisher gets the subscriber", func(t *testing.T) {
		publisher := NewInProcessPublisher(newTestLogger())

		RegisterSubscriber(SubscribeParams{Publisher: publisher, Subscriber: subscriber, Logger: newTestLogger()})

		assert.Len(t, publisher.subscribers, 1)
	})

	t.Run("other publishers are left alone", func(t *testing.T) {
		publisher := &noopPublisher{logger: newTestLogger()}

		assert.NotPanics(t, func() {
			RegisterSubscriber(SubscribeParams{Publisher: publisher, Subscriber: subscriber, Logger: newTestLogger()})
		})
	})

	t.Run("missing subscriber", func(t *testing.T) {
		publisher := NewInProcessPublisher(newTestLogger())

		RegisterSubscriber(SubscribeParams{Publisher: publisher, Logger: newTestLogger()})

		assert.Empty(t, publisher.subscribers)
	})
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, publisher service.EventPublisher)
	}{
		{
			name:   "not configured",
			pubsub: nil,
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
			},
		},
		{
			name:   "in-process",
			pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderInProcess},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &InProcessPublisher{}, publisher)
			},
		},
		{
			name:   "local",
			pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			},
		},
		{
			name:    "local without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "events"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topic",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "topic ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newTestLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
