// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used by the service.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// FirebaseParams holds dependencies for the Firebase service, injected by Fx
type FirebaseParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance.
// Without a credentials path the application default credentials are used.
func NewFirebaseService(params FirebaseParams) (service.NotificationService, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)
	if cfg := params.Config.Firebase; cfg != nil {
		if cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, params.Logger), nil
}

func newFirebaseService(client messagingClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{client: client, logger: logger}
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("topic is required")
	}

	return s.send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return errors.New("device token is required")
	}

	return s.send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
}

func (s *firebaseService) send(ctx context.Context, message *messaging.Message) error {
	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("Push notification sent",
		slog.String("message_id", messageID),
		slog.String("topic", message.Topic),
	)

	return nil
}
