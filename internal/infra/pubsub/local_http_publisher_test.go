package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	recipient := uuid.New()
	event := entity.NewDomainEvent(constants.EventFarmApproved, uuid.New(), recipient, "農場審核通過", "青山農場已上架", nil)

	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())

	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, constants.EventFarmApproved, received.Message.Attributes["event_type"])
	assert.Equal(t, recipient.String(), received.Message.Attributes["recipient_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "青山農場已上架", decoded.Body)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.Publish(context.Background(), entity.NewDomainEvent(constants.EventFarmRejected, uuid.New(), uuid.New(), "", "", nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
