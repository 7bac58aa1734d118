package service

import (
	"context"

	"streamsync/internal/domain/entity"
)

// CatalogProvider is the external video directory the catalog cache mirrors.
type CatalogProvider interface {
	// SearchChannelVideos returns up to maxResults video ids of a channel, newest published first.
	SearchChannelVideos(ctx context.Context, channelID string, maxResults int) ([]string, error)

	// FetchVideoDetails returns full metadata for the given video ids. CachedAt is left zero.
	FetchVideoDetails(ctx context.Context, videoIDs []string) ([]*entity.CatalogEntry, error)
}
