package main

import (
	"context"
	"log/slog"
	"os"

	"streamsync/config"
	"streamsync/internal/delivery"
	"streamsync/internal/delivery/api"
	"streamsync/internal/delivery/api/middleware"
	"streamsync/internal/delivery/api/router/handler"
	"streamsync/internal/infra/auth"
	"streamsync/internal/infra/cache"
	logs "streamsync/internal/infra/log"
	"streamsync/internal/infra/notification"
	"streamsync/internal/infra/persistence/postgres"
	"streamsync/internal/infra/pubsub"
	"streamsync/internal/infra/ratelimit"
	"streamsync/internal/infra/youtube"
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
		cache.NewRedisClient,
		ratelimit.NewSendTestStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCatalogRepository,
			postgres.NewDeviceTokenRepository,
			postgres.NewNotificationRepository,
			postgres.NewProgressRepository,
			postgres.NewFavoriteRepository,
			postgres.NewTransactionManager,
		),
		fx.Decorate(cache.DecorateDeviceTokenRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			youtube.NewCatalogProvider,
			notification.NewFirebaseProvider,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewLibraryService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVideoHandler,
			handler.NewNotificationHandler,
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
