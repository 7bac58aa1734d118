package middleware

import (
	"log/slog"

	"streamsync/internal/delivery/api/response"
	"streamsync/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

var errMissingIdentity = errors.New("rate limited route requires an authenticated user")

// failOpenStore lets requests through when the backing store cannot answer.
type failOpenStore struct {
	ratelimit.Store

	logger *slog.Logger
}

func (s *failOpenStore) Allow(identifier string) (bool, error) {
	allowed, err := s.Store.Allow(identifier)
	if err != nil {
		s.logger.Warn("Rate limit store unavailable, allowing request",
			slog.String("identifier", identifier),
			slog.Any("error", err),
		)

		return true, nil
	}

	return allowed, nil
}

// NewUserRateLimiter limits requests per authenticated user. It must run after Authenticate.
func NewUserRateLimiter(store ratelimit.Store, logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: &failOpenStore{Store: store, logger: logger},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			userID, ok := GetUserID(c)
			if !ok {
				return "", errMissingIdentity
			}

			return userID.String(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			return response.TooManyRequests(c, store.RetryAfter(identifier))
		},
	})
}
