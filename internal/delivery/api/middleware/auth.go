package middleware

import (
	"strings"

	"streamsync/internal/delivery/api/response"
	"streamsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware validates JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer access token and stores the caller's id and roles
// on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(contextKeyRoles).([]string)

	return roles
}
