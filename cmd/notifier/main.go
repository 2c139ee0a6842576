package main

import (
	"context"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/worker"
	"harvest/internal/delivery/worker/handler"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/notification"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// Receives pushed domain events and fans them out as Firebase topic notifications.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			notification.NewFirebaseService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
