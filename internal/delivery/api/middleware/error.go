package middleware

import (
	"log/slog"
	"net/http"

	"streamsync/internal/delivery/api/response"
	deliverycontext "streamsync/internal/delivery/context"
	domainerrors "streamsync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that reaches echo in the common error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is used as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}

		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
