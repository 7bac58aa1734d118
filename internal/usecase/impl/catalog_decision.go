package impl

import (
	"time"

	"streamsync/internal/domain/entity"
)

// catalogAction is the next thing GetCatalog has to do.
type catalogAction int

const (
	actionServe catalogAction = iota
	actionFetch
)

// catalogState is everything known about a catalog request at one point of its lifecycle.
type catalogState struct {
	providerConfigured bool
	cached             []*entity.CatalogEntry
	fetched            bool // The provider has been asked.
	fetchedEntries     []*entity.CatalogEntry
	fetchErr           error
}

type catalogDecision struct {
	action  catalogAction
	source  entity.CatalogSource
	entries []*entity.CatalogEntry
}

// decideCatalog picks the tier that answers a catalog request. It performs no I/O: the caller runs
// the fetch when asked to and calls it again with the outcome.
func decideCatalog(state catalogState, now time.Time, freshness time.Duration) catalogDecision {
	if !state.providerConfigured {
		return catalogDecision{action: actionServe, source: entity.CatalogSourceSynthetic}
	}

	if !state.fetched {
		if len(state.cached) > 0 && now.Sub(state.cached[0].CachedAt) < freshness {
			return catalogDecision{action: actionServe, source: entity.CatalogSourceFresh, entries: state.cached}
		}

		return catalogDecision{action: actionFetch}
	}

	if state.fetchErr == nil && len(state.fetchedEntries) > 0 {
		return catalogDecision{action: actionServe, source: entity.CatalogSourceRefreshed, entries: state.fetchedEntries}
	}

	if len(state.cached) > 0 {
		return catalogDecision{action: actionServe, source: entity.CatalogSourceStale, entries: state.cached}
	}

	return catalogDecision{action: actionServe, source: entity.CatalogSourceSynthetic}
}

// syntheticCatalog is the demo set served when nothing better is available.
func syntheticCatalog(now time.Time) []*entity.CatalogEntry {
	const channelID = "UCYfdidRxbB8Qhf0Nx7ioOYw"
	const channelTitle = "Tech Channel"

	return []*entity.CatalogEntry{
		{
			EntryID:            "dQw4w9WgXcQ",
			Title:              "Sample Video - Learn TypeScript",
			Description:        "This is a sample video for testing the StreamSync Lite app. Learn TypeScript fundamentals and advanced concepts.",
			ThumbnailURL:       "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
			SourceChannelID:    channelID,
			SourceChannelTitle: channelTitle,
			PublishedAt:        now,
			DurationSeconds:    600,
		},
		{
			EntryID:            "jNQXAC9IVRw",
			Title:              "Sample Video 2 - Node.js Backend",
			Description:        "Building scalable backends with Node.js and Express. Best practices for production.",
			ThumbnailURL:       "https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg",
			SourceChannelID:    channelID,
			SourceChannelTitle: channelTitle,
			PublishedAt:        now.Add(-24 * time.Hour),
			DurationSeconds:    720,
		},
		{
			EntryID:            "M7lc1UVf-VE",
			Title:              "Sample Video 3 - Flutter Development",
			Description:        "Complete Flutter tutorial for building mobile apps. From basics to advanced state management.",
			ThumbnailURL:       "https://i.ytimg.com/vi/M7lc1UVf-VE/hqdefault.jpg",
			SourceChannelID:    channelID,
			SourceChannelTitle: channelTitle,
			PublishedAt:        now.Add(-48 * time.Hour),
			DurationSeconds:    900,
		},
	}
}
