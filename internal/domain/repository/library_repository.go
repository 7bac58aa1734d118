package repository

import (
	"context"
	"errors"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when the user has not favorited the video.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ProgressRepository stores playback progress per (user, video).
type ProgressRepository interface {
	// UpsertProgress creates or overwrites the progress row of (UserID, VideoID).
	UpsertProgress(ctx context.Context, progress *entity.Progress) error

	// FindProgressByUser returns the user's progress rows, most recently updated first, with videos attached.
	FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Progress, error)
}

// FavoriteRepository stores favorited videos per (user, video).
type FavoriteRepository interface {
	// UpsertFavorite creates the favorite or refreshes its synced flag.
	UpsertFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes the favorite of (userID, videoID).
	DeleteFavorite(ctx context.Context, userID uuid.UUID, videoID string) error

	// FindFavoritesByUser returns the user's favorites, newest first, with videos attached.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
