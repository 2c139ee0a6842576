package main

import (
	"context"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/api"
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/delivery/consumer"
	"harvest/internal/infra/auth"
	"harvest/internal/infra/cache"
	"harvest/internal/infra/export"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/persistence/postgres"
	"harvest/internal/infra/pubsub"
	"harvest/internal/infra/qrcode"
	"harvest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCropRepository,
			postgres.NewFarmRepository,
			postgres.NewPlantedCropRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			export.NewFarmOrderExporter,
			pubsub.NewEventPublisher,
			cache.NewIdempotencyStore,
			cache.NewIdempotencySettings,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewFarmService,
			impl.NewPlantedCropService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewIdempotencyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCropHandler,
			handler.NewFarmHandler,
			handler.NewPlantedCropHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				consumer.NewOrderConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
