package handler

import (
	"log/slog"
	"net/http"

	"streamsync/internal/delivery/api/middleware"
	"streamsync/internal/delivery/api/response"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	DeviceUC       usecase.DeviceUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves device token registration, sends and the notification inbox.
type NotificationHandler struct {
	deviceUC       usecase.DeviceUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		deviceUC:       params.DeviceUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// RegisterTokenRequest is the body of POST /api/notifications/tokens.
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required,min=10"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// DeleteTokenRequest identifies the token to remove, in the body or the query string.
type DeleteTokenRequest struct {
	Token string `json:"token" query:"token" validate:"required"`
}

// SendRequest is the body of the send-test and queue endpoints.
type SendRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
	Body  string `json:"body" validate:"required,min=1,max=500"`
}

// MarkReadRequest is the body of POST /api/notifications/mark-read.
type MarkReadRequest struct {
	NotificationID string `json:"notification_id" validate:"required,uuid"`
}

// ListNotificationsRequest holds the query of GET /api/notifications.
type ListNotificationsRequest struct {
	Limit int `query:"limit" validate:"gte=0,lte=200"`
}

// RegisterToken stores a push token for the caller's device.
func (h *NotificationHandler) RegisterToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterTokenRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterToken(c.Request().Context(), userID, req.Token, entity.Platform(req.Platform))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// DeleteToken removes one of the caller's push tokens.
func (h *NotificationHandler) DeleteToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req DeleteTokenRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.DeleteToken(c.Request().Context(), userID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token removed"})
}

// DeleteAllTokens removes every push token of the caller.
func (h *NotificationHandler) DeleteAllTokens(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	removed, err := h.deviceUC.DeleteAllTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}

// SendTest pushes a notification to all of the caller's devices right away.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	outcome, err := h.notificationUC.SendToUser(c.Request().Context(), userID, req.Title, req.Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// Queue records a notification for the caller and hands it to the worker.
func (h *NotificationHandler) Queue(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	notification, err := h.notificationUC.QueueToUser(c.Request().Context(), userID, req.Title, req.Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, notification)
}

// List returns the caller's notifications. A zero limit uses the default page size.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListNotificationsRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkRead flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req MarkReadRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), uuid.MustParse(req.NotificationID), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// Delete hides one of the caller's notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "Invalid notification ID")
	}

	if err := h.notificationUC.SoftDelete(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted"})
}

// UnreadCount returns how many of the caller's notifications are unread.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}
