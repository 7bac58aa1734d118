package response

import (
	"math"
	"net/http"
	"strconv"
	"time"

	deliverycontext "streamsync/internal/delivery/context"
	domainerrors "streamsync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code       string `json:"code"`                  // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message    string `json:"message"`               // User-friendly error message
	Details    any    `json:"details,omitempty"`     // Additional error context (only for 4xx errors)
	RetryAfter int    `json:"retry_after,omitempty"` // Seconds until a rate limited call may be retried
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: visibleDetails(statusCode, details),
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// TooManyRequests returns a 429 error and sets the Retry-After header.
func TooManyRequests(c echo.Context, retryAfter time.Duration) error {
	seconds := int(math.Ceil(retryAfter.Seconds()))
	if seconds < 1 {
		seconds = 1
	}

	c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))

	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error: &ErrorInfo{
			Code:       domainerrors.ErrRateLimited.ErrorCode(),
			Message:    domainerrors.ErrRateLimited.Message(),
			RetryAfter: seconds,
		},
		Meta: meta(c),
	})
}

// HandleAppError renders domain errors. Anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Details are hidden for 5xx and authentication errors.
func visibleDetails(statusCode int, details any) any {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		return nil
	}

	return details
}
