// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"streamsync/internal/delivery/api/middleware"
	"streamsync/internal/delivery/api/router/handler"
	"streamsync/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	VideoHandler        *handler.VideoHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	SendTestStore       ratelimit.Store
	Logger              *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	videoHandler        *handler.VideoHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	sendTestLimiter     echo.MiddlewareFunc
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		videoHandler:        params.VideoHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		sendTestLimiter:     middleware.NewUserRateLimiter(params.SendTestStore, params.Logger),
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// The catalog is public, the library needs a user.
	videosGroup := api.Group("/videos")
	{
		videosGroup.GET("/latest", r.videoHandler.GetLatest)
		videosGroup.GET("/:videoId", r.videoHandler.GetVideo)

		libraryGroup := videosGroup.Group("", r.authMiddleware.Authenticate)
		libraryGroup.POST("/progress", r.videoHandler.SaveProgress)
		libraryGroup.GET("/progress/user", r.videoHandler.ListProgress)
		libraryGroup.POST("/favorites", r.videoHandler.AddFavorite)
		libraryGroup.DELETE("/favorites/:videoId", r.videoHandler.RemoveFavorite)
		libraryGroup.GET("/favorites/user", r.videoHandler.ListFavorites)
	}

	notificationsGroup := api.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.POST("/tokens", r.notificationHandler.RegisterToken)
		notificationsGroup.DELETE("/tokens", r.notificationHandler.DeleteToken)
		notificationsGroup.DELETE("/tokens/all", r.notificationHandler.DeleteAllTokens)
		notificationsGroup.POST("/send-test", r.notificationHandler.SendTest, r.sendTestLimiter)
		notificationsGroup.POST("/queue", r.notificationHandler.Queue)
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.POST("/mark-read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Delete)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
	}
}
