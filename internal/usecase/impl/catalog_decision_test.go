package impl

import (
	"testing"
	"time"

	"streamsync/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDecideCatalog(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	young := []*entity.CatalogEntry{{EntryID: "a", CachedAt: now.Add(-5 * time.Minute)}}
	old := []*entity.CatalogEntry{{EntryID: "a", CachedAt: now.Add(-11 * time.Minute)}}
	fetched := []*entity.CatalogEntry{{EntryID: "b"}}

	tests := []struct {
		name       string
		state      catalogState
		wantAction catalogAction
		wantSource entity.CatalogSource
		wantIDs    []string
	}{
		{
			name:       "unconfigured provider serves synthetic",
			state:      catalogState{cached: young},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceSynthetic,
		},
		{
			name:       "young cache is fresh",
			state:      catalogState{providerConfigured: true, cached: young},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceFresh,
			wantIDs:    []string{"a"},
		},
		{
			name:       "cache at the window edge needs a fetch",
			state:      catalogState{providerConfigured: true, cached: []*entity.CatalogEntry{{EntryID: "a", CachedAt: now.Add(-window)}}},
			wantAction: actionFetch,
		},
		{
			name:       "old cache needs a fetch",
			state:      catalogState{providerConfigured: true, cached: old},
			wantAction: actionFetch,
		},
		{
			name:       "empty cache needs a fetch",
			state:      catalogState{providerConfigured: true},
			wantAction: actionFetch,
		},
		{
			name:       "provider entries are refreshed",
			state:      catalogState{providerConfigured: true, cached: old, fetched: true, fetchedEntries: fetched},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceRefreshed,
			wantIDs:    []string{"b"},
		},
		{
			name:       "provider error falls back to stale cache",
			state:      catalogState{providerConfigured: true, cached: old, fetched: true, fetchErr: errors.New("quota")},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceStale,
			wantIDs:    []string{"a"},
		},
		{
			name:       "empty provider answer falls back to stale cache",
			state:      catalogState{providerConfigured: true, cached: old, fetched: true},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceStale,
			wantIDs:    []string{"a"},
		},
		{
			name:       "provider error with empty cache is synthetic",
			state:      catalogState{providerConfigured: true, fetched: true, fetchErr: errors.New("down")},
			wantAction: actionServe,
			wantSource: entity.CatalogSourceSynthetic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := decideCatalog(tt.state, now, window)

			assert.Equal(t, tt.wantAction, decision.action)
			if tt.wantAction == actionFetch {
				return
			}
			assert.Equal(t, tt.wantSource, decision.source)

			ids := make([]string, 0, len(decision.entries))
			for _, entry := range decision.entries {
				ids = append(ids, entry.EntryID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestSyntheticCatalog(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := syntheticCatalog(now)

	assert.Len(t, entries, 3)
	assert.Equal(t, "dQw4w9WgXcQ", entries[0].EntryID)
	assert.Equal(t, 600, entries[0].DurationSeconds)
	assert.True(t, entries[0].PublishedAt.After(entries[1].PublishedAt))
	assert.True(t, entries[1].PublishedAt.After(entries[2].PublishedAt))
}
