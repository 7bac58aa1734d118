// Package usecase defines the application-facing operations the delivery layer calls.
package usecase

import (
	"context"

	"streamsync/internal/domain/entity"
)

// CatalogUsecase serves the mirrored video catalog.
type CatalogUsecase interface {
	// GetCatalog returns up to maxResults videos of a channel, newest published first.
	// Provider failures are never returned; the result's Source says which tier answered.
	GetCatalog(ctx context.Context, channelID string, maxResults int) (*entity.CatalogResult, error)

	// GetVideoByID returns a cached video.
	GetVideoByID(ctx context.Context, videoID string) (*entity.CatalogEntry, error)
}
