package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	sent []*messaging.Message
	err  error
}

func (c *recordingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.sent = append(c.sent, message)

	return "projects/test/messages/1", nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	client := &recordingClient{}
	svc := newFirebaseService(client, newDiscardLogger())

	err := svc.SendToTopic(context.Background(), "user-42", "訂單已就緒", "農場訂單可取貨", map[string]string{"farm_order_id": "fo-1"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "user-42", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "訂單已就緒", msg.Notification.Title)
	assert.Equal(t, "fo-1", msg.Data["farm_order_id"])
}

func TestFirebaseService_SendToTopic_RequiresTopic(t *testing.T) {
	client := &recordingClient{}
	svc := newFirebaseService(client, newDiscardLogger())

	err := svc.SendToTopic(context.Background(), "", "title", "body", nil)
	assert.Error(t, err)
	assert.Empty(t, client.sent)
}

func TestFirebaseService_SendSingleNotification_PropagatesError(t *testing.T) {
	client := &recordingClient{err: errors.New("unavailable")}
	svc := newFirebaseService(client, newDiscardLogger())

	err := svc.SendSingleNotification(context.Background(), "device-token", "title", "body", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}
