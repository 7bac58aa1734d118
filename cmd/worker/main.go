package main

import (
	"context"
	"log/slog"
	"os"

	"streamsync/config"
	"streamsync/internal/delivery"
	"streamsync/internal/delivery/worker"
	"streamsync/internal/delivery/worker/handler"
	"streamsync/internal/infra/cache"
	logs "streamsync/internal/infra/log"
	"streamsync/internal/infra/notification"
	"streamsync/internal/infra/persistence/postgres"
	"streamsync/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
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
		// The API caches token lists, so token cleanup here has to invalidate the same keys.
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceTokenRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
		fx.Decorate(cache.DecorateDeviceTokenRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
