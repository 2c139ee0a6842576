package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	mockSvc "harvest/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, workerCfg *config.WorkerConfig) (*PushHandler, *mockSvc.MockNotificationService) {
	t.Helper()

	notifier := mockSvc.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{Worker: workerCfg},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifier,
	})

	return h, notifier
}

func pushBody(t *testing.T, event *entity.DomainEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"event_id": event.ID.String()}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_SendsToRecipientTopic(t *testing.T) {
	h, notifier := newTestPushHandler(t, nil)
	recipient := uuid.New()
	event := entity.NewDomainEvent(constants.EventFarmOrderReady, uuid.New(), recipient,
		"訂單已備妥", "您的訂單可以取貨了", map[string]string{"farm_id": "f1"})

	notifier.EXPECT().SendToTopic(mock.Anything, constants.NotificationTopicPrefix+recipient.String(),
		"訂單已備妥", "您的訂單可以取貨了",
		mock.MatchedBy(func(data map[string]string) bool {
			return data["farm_id"] == "f1" &&
				data["event_type"] == constants.EventFarmOrderReady &&
				data["event_id"] == event.ID.String() &&
				data["aggregate_id"] == event.AggregateID.String()
		})).Return(nil)

	rec := doPush(h, pushBody(t, event), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NotifierFailureAsksForRedelivery(t *testing.T) {
	h, notifier := newTestPushHandler(t, nil)
	event := entity.NewDomainEvent(constants.EventFarmApproved, uuid.New(), uuid.New(), "農場審核通過", "", nil)

	notifier.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	rec := doPush(h, pushBody(t, event), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DropsUndeliverableMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	t.Run("no recipient", func(t *testing.T) {
		event := entity.NewDomainEvent(constants.EventProductListed, uuid.New(), uuid.Nil, "新商品", "", nil)
		assert.Equal(t, http.StatusOK, doPush(h, pushBody(t, event), "").Code)
	})

	t.Run("bad base64", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"%%%"}}`, "").Code)
	})

	t.Run("not an event", func(t *testing.T) {
		data := base64.StdEncoding.EncodeToString([]byte("plain text"))
		assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"`+data+`"}}`, "").Code)
	})
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	h, notifier := newTestPushHandler(t, &config.WorkerConfig{VerifyPushToken: true, PushAudience: "https://notifier.example/push"})
	event := entity.NewDomainEvent(constants.EventFarmApproved, uuid.New(), uuid.New(), "農場審核通過", "", nil)

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "foreign":
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		default:
			return nil, errors.New("signature mismatch")
		}
	}

	assert.Equal(t, http.StatusUnauthorized, doPush(h, pushBody(t, event), "").Code)
	assert.Equal(t, http.StatusUnauthorized, doPush(h, pushBody(t, event), "Bearer forged").Code)
	assert.Equal(t, http.StatusUnauthorized, doPush(h, pushBody(t, event), "Bearer foreign").Code)

	notifier.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	assert.Equal(t, http.StatusOK, doPush(h, pushBody(t, event), "Bearer good").Code)
	assert.Equal(t, "https://notifier.example/push", gotAudience)
}
