package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
// UserID is filled from the "sub" claim after parsing.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email,omitempty"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a short-lived token used to authenticate API calls.
	GenerateAccessToken(userID uuid.UUID, email string, roles []string) (string, error)

	// GenerateRefreshToken creates a long-lived token that can only mint new access tokens.
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken parses an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
