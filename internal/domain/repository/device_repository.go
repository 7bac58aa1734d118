// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceTokenNotFound is returned when no registration exists for a token.
var ErrDeviceTokenNotFound = errors.New("device token not found")

// DeviceTokenRepository maps users to the push tokens of their devices.
type DeviceTokenRepository interface {
	// UpsertToken stores the token for its owner. An existing row for the same token is
	// reassigned to the new owner and platform.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error)

	// FindByToken returns the registration of a token regardless of its owner.
	FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error)

	// FindTokensByUser returns every token currently owned by the user.
	FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteToken removes the token only when it is owned by userID and returns the rows affected.
	DeleteToken(ctx context.Context, userID uuid.UUID, token string) (int64, error)

	// DeleteTokens removes the listed tokens owned by userID.
	DeleteTokens(ctx context.Context, userID uuid.UUID, tokens []string) (int64, error)

	// DeleteAllUserTokens removes every token owned by userID.
	DeleteAllUserTokens(ctx context.Context, userID uuid.UUID) (int64, error)
}
