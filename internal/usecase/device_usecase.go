package usecase

import (
	"context"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase manages the push tokens registered by a user's devices.
type DeviceUsecase interface {
	// RegisterToken stores the token for userID. A token owned by another user is reassigned.
	RegisterToken(ctx context.Context, userID uuid.UUID, token string, platform entity.Platform) (*entity.DeviceToken, error)

	// DeleteToken removes the token when userID owns it. Anything else is a silent no-op.
	DeleteToken(ctx context.Context, userID uuid.UUID, token string) error

	// DeleteAllTokens removes every token of userID and reports how many were removed.
	DeleteAllTokens(ctx context.Context, userID uuid.UUID) (int64, error)
}
