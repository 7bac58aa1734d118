// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"streamsync/config"
	"streamsync/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := time.Hour
	refreshTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the email and roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, email string, roles []string) (string, error) {
	return s.sign(&service.Claims{
		Email: email,
		Roles: roles,
		Type:  service.TokenTypeAccess,
	}, userID, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken creates a signed refresh token. Roles are left out on purpose; they are
// re-read from the user record on refresh.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(&service.Claims{
		Type: service.TokenTypeRefresh,
	}, userID, s.refreshTTL, s.refreshSecret)
}

// ValidateAccessToken parses an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken parses a refresh token and returns its claims.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(claims *service.Claims, userID uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte, tokenType string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}
	claims.UserID = userID

	return claims, nil
}
