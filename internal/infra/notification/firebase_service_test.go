package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.sent = append(r.sent, message)

	return "projects/test/messages/1", nil
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendToTopic(context.Background(), "user-42", "Offer claimed", "Enjoy", map[string]string{"event": "Claimed"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "user-42", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Offer claimed", msg.Notification.Title)
	assert.Equal(t, "Enjoy", msg.Notification.Body)
	assert.Equal(t, "Claimed", msg.Data["event"])
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	require.NoError(t, svc.SendSingleNotification(context.Background(), "device-token", "t", "b", nil))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "device-token", sender.sent[0].Token)
}

func TestFirebaseService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty topic", func(t *testing.T) {
		svc := &firebaseService{client: &recordingSender{}}
		assert.Error(t, svc.SendToTopic(ctx, "", "t", "b", nil))
	})

	t.Run("empty token", func(t *testing.T) {
		svc := &firebaseService{client: &recordingSender{}}
		assert.Error(t, svc.SendSingleNotification(ctx, "", "t", "b", nil))
	})

	t.Run("send failure", func(t *testing.T) {
		sendErr := errors.New("unavailable")
		svc := &firebaseService{client: &recordingSender{err: sendErr}}

		err := svc.SendToTopic(ctx, "user-42", "t", "b", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, sendErr)
	})
}
