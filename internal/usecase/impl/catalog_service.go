// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"streamsync/config"
	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/domain/service"
	"streamsync/internal/usecase"
	"streamsync/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	defaultUntitled       = "Untitled"
	defaultUnknownChannel = "Unknown Channel"

	// catalogResolveTimeout bounds a shared resolution, which outlives any single caller.
	catalogResolveTimeout = 30 * time.Second
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	provider    service.CatalogProvider
	freshness   time.Duration
	maxResults  int
	group       singleflight.Group
	now         func() time.Time
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Provider    service.CatalogProvider `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates the catalog use case. A nil Provider means the directory is not configured.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	freshness := config.DefaultFreshnessWindow
	maxResults := config.DefaultMaxResults
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.FreshnessWindow > 0 {
			freshness = params.Config.Catalog.FreshnessWindow
		}
		if params.Config.Catalog.DefaultMaxResults > 0 {
			maxResults = params.Config.Catalog.DefaultMaxResults
		}
	}

	return &catalogService{
		catalogRepo: params.CatalogRepo,
		provider:    params.Provider,
		freshness:   freshness,
		maxResults:  maxResults,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetCatalog resolves the catalog of a channel through the fresh, refreshed, stale and synthetic tiers.
// Concurrent calls for the same channel and size share one resolution. The resolution runs
// detached from the caller that started it, and each caller stops waiting when its own context ends.
func (s *catalogService) GetCatalog(ctx context.Context, channelID string, maxResults int) (*entity.CatalogResult, error) {
	if channelID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "channel id is required")
	}
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	key := channelID + ":" + strconv.Itoa(maxResults)
	resultCh := s.group.DoChan(key, func() (any, error) {
		resolveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogResolveTimeout)
		defer cancel()

		return s.resolve(resolveCtx, channelID, maxResults)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log(ctx).Debug("Catalog request joined an in-flight resolution", slog.String("channel_id", channelID))
		}

		return res.Val.(*entity.CatalogResult), nil
	}
}

func (s *catalogService) resolve(ctx context.Context, channelID string, maxResults int) (*entity.CatalogResult, error) {
	state := catalogState{providerConfigured: s.provider != nil}

	if state.providerConfigured {
		cached, err := s.catalogRepo.FindByChannel(ctx, channelID, maxResults)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read cached catalog")
		}
		state.cached = cached
	}

	decision := decideCatalog(state, s.now(), s.freshness)
	if decision.action == actionFetch {
		state.fetched = true
		state.fetchedEntries, state.fetchErr = s.fetch(ctx, channelID, maxResults)
		if state.fetchErr != nil {
			s.log(ctx).Warn("Catalog provider failed, falling back",
				slog.String("channel_id", channelID),
				slog.Any("error", state.fetchErr))
		}
		decision = decideCatalog(state, s.now(), s.freshness)
	}

	switch decision.source {
	case entity.CatalogSourceRefreshed:
		if err := s.catalogRepo.UpsertEntries(ctx, decision.entries); err != nil {
			// The provider answer is still served; the next request retries the write.
			s.log(ctx).Error("Failed to cache catalog entries",
				slog.String("channel_id", channelID),
				slog.Any("error", err))
		}
	case entity.CatalogSourceStale:
		s.log(ctx).Warn("Serving stale catalog",
			slog.String("channel_id", channelID),
			slog.String("cache_age", util.FormatDuration(s.now().Sub(decision.entries[0].CachedAt))))
	case entity.CatalogSourceSynthetic:
		decision.entries = limitEntries(syntheticCatalog(s.now()), maxResults)
	}

	s.log(ctx).Debug("Catalog resolved",
		slog.String("channel_id", channelID),
		slog.String("source", string(decision.source)),
		slog.Int("count", len(decision.entries)))

	return &entity.CatalogResult{Entries: decision.entries, Source: decision.source}, nil
}

// fetch asks the provider for the newest videos of a channel and fills missing fields.
func (s *catalogService) fetch(ctx context.Context, channelID string, maxResults int) ([]*entity.CatalogEntry, error) {
	ids, err := s.provider.SearchChannelVideos(ctx, channelID, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	entries, err := s.provider.FetchVideoDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, entry := range entries {
		applyEntryDefaults(entry, channelID, now)
	}

	return entries, nil
}

// GetVideoByID returns a cached video or VideoNotFound.
func (s *catalogService) GetVideoByID(ctx context.Context, videoID string) (*entity.CatalogEntry, error) {
	if videoID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "video id is required")
	}

	entry, err := s.catalogRepo.FindByID(ctx, videoID)
	if errors.Is(err, repository.ErrCatalogEntryNotFound) {
		return nil, domainerrors.ErrVideoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find video")
	}

	return entry, nil
}

func applyEntryDefaults(entry *entity.CatalogEntry, channelID string, now time.Time) {
	if entry.Title == "" {
		entry.Title = defaultUntitled
	}
	if entry.SourceChannelTitle == "" {
		entry.SourceChannelTitle = defaultUnknownChannel
	}
	if entry.SourceChannelID == "" {
		entry.SourceChannelID = channelID
	}
	if entry.PublishedAt.IsZero() {
		entry.PublishedAt = now
	}
}

func limitEntries(entries []*entity.CatalogEntry, limit int) []*entity.CatalogEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}

	return entries
}
