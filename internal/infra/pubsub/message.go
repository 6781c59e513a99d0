package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"rewards/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushSubscription is the subscription name used by the local publisher.
const PushSubscription = "projects/local/subscriptions/rewards-events"

// PushMessage represents the structure of a Pub/Sub push message.
// Google Pub/Sub uses this format when pushing to HTTP endpoints and the local publisher mimics it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are copied to every published message for filtering and tracing.
func eventAttributes(event *entity.DomainEvent) map[string]string {
	attributes := map[string]string{
		"event":    event.Name,
		"event_id": event.ID.String(),
		"user_id":  event.UserID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps the event the way a push subscription delivers it.
func NewPushMessage(event *entity.DomainEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: PushSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the domain event carried by a push message.
// A request_id attribute wins over the one in the payload.
func (m *PushMessage) DecodeEvent() (*entity.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse domain event")
	}

	if event.Name == "" {
		return nil, errors.New("domain event has no name")
	}

	if requestID := m.Message.Attributes["request_id"]; requestID != "" {
		event.RequestID = requestID
	}

	return &event, nil
}
