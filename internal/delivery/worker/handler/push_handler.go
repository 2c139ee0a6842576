package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator matches idtoken.Validate
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns pushed domain events into Firebase topic notifications
type PushHandler struct {
	verifyPushAuth  bool
	audience        string
	validate        tokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate:        idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
	if w := params.Config.Worker; w != nil {
		h.verifyPushAuth = w.VerifyPushToken
		h.audience = w.PushAudience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Trace by the event id so redeliveries of one event share a request id
	requestID := pushMsg.Message.Attributes["event_id"]
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.RecipientID == uuid.Nil {
		reqLogger.Warn("[Worker] Event has no recipient, dropping", slog.String("event_type", event.Type))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("recipient_id", event.RecipientID.String()),
	)

	if err := h.notify(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to send notification",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) notify(ctx context.Context, event *entity.DomainEvent) error {
	data := make(map[string]string, len(event.Data)+3)
	for k, v := range event.Data {
		data[k] = v
	}
	data["event_id"] = event.ID.String()
	data["event_type"] = event.Type
	data["aggregate_id"] = event.AggregateID.String()

	topic := constants.NotificationTopicPrefix + event.RecipientID.String()

	return errors.WithStack(h.notificationSvc.SendToTopic(ctx, topic, event.Title, event.Body, data))
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
