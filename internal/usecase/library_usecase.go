package usecase

import (
	"context"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressInput is a playback position reported by a client.
type ProgressInput struct {
	VideoID          string
	PositionSeconds  int
	CompletedPercent float64
}

// LibraryUsecase keeps per-user playback progress and favorites.
type LibraryUsecase interface {
	SaveProgress(ctx context.Context, userID uuid.UUID, input *ProgressInput) (*entity.Progress, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]*entity.Progress, error)

	// AddFavorite favorites a video that exists in the catalog cache.
	AddFavorite(ctx context.Context, userID uuid.UUID, videoID string) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, videoID string) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
