// Package youtube adapts the YouTube Data API to the catalog provider contract.
package youtube

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"streamsync/config"
	"streamsync/internal/domain/constants"
	"streamsync/internal/domain/entity"
	"streamsync/internal/domain/service"
	"streamsync/internal/errors"
	"streamsync/internal/util"

	"go.uber.org/fx"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// maxPageSize is the largest page the Data API accepts for search and videos.list.
const maxPageSize = 50

var (
	searchParts  = []string{"snippet"}
	detailsParts = []string{"contentDetails", "snippet", "statistics"}
)

type provider struct {
	svc *ytapi.Service
}

// Params defines the dependencies of the catalog provider.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogProvider builds the YouTube-backed provider. It returns a nil provider when no usable
// API key is configured; the catalog then falls back to its synthetic set.
func NewCatalogProvider(params Params) (service.CatalogProvider, error) {
	cfg := params.Config.YouTube
	if cfg == nil || !IsConfigured(cfg.APIKey) {
		params.Logger.Warn("YouTube API key not configured, catalog will serve cached or synthetic videos")

		return nil, nil
	}

	return New(context.Background(), option.WithAPIKey(cfg.APIKey))
}

// New creates a provider from raw client options.
func New(ctx context.Context, opts ...option.ClientOption) (service.CatalogProvider, error) {
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create YouTube service")
	}

	return &provider{svc: svc}, nil
}

// IsConfigured reports whether apiKey is a real key rather than empty or the sample placeholder.
func IsConfigured(apiKey string) bool {
	key := strings.TrimSpace(apiKey)

	return key != "" && key != constants.PlaceholderYouTubeAPIKey
}

// SearchChannelVideos returns the newest video ids of a channel.
func (p *provider) SearchChannelVideos(ctx context.Context, channelID string, maxResults int) ([]string, error) {
	if maxResults <= 0 || maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	resp, err := p.svc.Search.List(searchParts).
		ChannelId(channelID).
		MaxResults(int64(maxResults)).
		Order("date").
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "search videos of channel %s", channelID)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	return ids, nil
}

// FetchVideoDetails returns metadata for the ids in the order they were requested.
func (p *provider) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]*entity.CatalogEntry, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	byID := make(map[string]*entity.CatalogEntry, len(videoIDs))
	for start := 0; start < len(videoIDs); start += maxPageSize {
		end := min(start+maxPageSize, len(videoIDs))

		resp, err := p.svc.Videos.List(detailsParts).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, errors.Wrap(err, "list video details")
		}

		for _, item := range resp.Items {
			if entry := toCatalogEntry(item); entry != nil {
				byID[entry.EntryID] = entry
			}
		}
	}

	entries := make([]*entity.CatalogEntry, 0, len(byID))
	for _, id := range videoIDs {
		if entry, ok := byID[id]; ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func toCatalogEntry(item *ytapi.Video) *entity.CatalogEntry {
	if item == nil || item.Id == "" {
		return nil
	}

	entry := &entity.CatalogEntry{EntryID: item.Id}

	if snippet := item.Snippet; snippet != nil {
		entry.Title = snippet.Title
		entry.Description = snippet.Description
		entry.SourceChannelID = snippet.ChannelId
		entry.SourceChannelTitle = snippet.ChannelTitle
		entry.ThumbnailURL = bestThumbnail(snippet.Thumbnails)

		if publishedAt, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
			entry.PublishedAt = publishedAt.UTC()
		}
	}

	if details := item.ContentDetails; details != nil {
		entry.DurationSeconds = util.ParseDuration(details.Duration)
	}

	return entry
}

// bestThumbnail picks high, then medium, then default resolution.
func bestThumbnail(thumbs *ytapi.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}

	for _, thumb := range []*ytapi.Thumbnail{thumbs.High, thumbs.Medium, thumbs.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}

	return ""
}
