// Package entity contains the core business objects of the project.
package entity

import "time"

// CatalogEntry is one externally sourced video mirrored into the local catalog cache.
type CatalogEntry struct {
	EntryID            string    `json:"video_id"`         // Identifier assigned by the video directory; natural key.
	Title              string    `json:"title"`            // Video title.
	Description        string    `json:"description"`      // Video description.
	ThumbnailURL       string    `json:"thumbnail_url"`    // Highest resolution thumbnail available, empty if none.
	SourceChannelID    string    `json:"channel_id"`       // Channel that published the video.
	SourceChannelTitle string    `json:"channel_title"`    // Display title of the channel.
	PublishedAt        time.Time `json:"published_at"`     // Publish timestamp reported by the source.
	DurationSeconds    int       `json:"duration_seconds"` // Playback length in seconds.
	CachedAt           time.Time `json:"cached_at"`        // Last time the entry was written to the cache.
}

// CatalogSource tags where a catalog result came from.
type CatalogSource string

const (
	// CatalogSourceFresh means the cache was young enough to be served without a provider call.
	CatalogSourceFresh CatalogSource = "fresh"
	// CatalogSourceRefreshed means the provider returned entries that were written to the cache.
	CatalogSourceRefreshed CatalogSource = "refreshed"
	// CatalogSourceStale means the provider failed or returned nothing and an expired cache was served.
	CatalogSourceStale CatalogSource = "stale"
	// CatalogSourceSynthetic means the fixed demo set was served.
	CatalogSourceSynthetic CatalogSource = "synthetic"
)

// CatalogResult is an ordered list of entries together with the tier that produced it.
type CatalogResult struct {
	Entries []*CatalogEntry `json:"videos"`
	Source  CatalogSource   `json:"source"`
}
