// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"streamsync/internal/domain/entity"
)

// ErrCatalogEntryNotFound is returned when no cached entry exists for a video id.
var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

// CatalogRepository is the cache store for catalog entries.
type CatalogRepository interface {
	// FindByChannel returns up to limit entries of a channel, newest publishedAt first.
	FindByChannel(ctx context.Context, channelID string, limit int) ([]*entity.CatalogEntry, error)

	// FindByID returns a single cached entry.
	FindByID(ctx context.Context, entryID string) (*entity.CatalogEntry, error)

	// UpsertEntries writes the entries keyed on entry id and stamps CachedAt on each of them.
	UpsertEntries(ctx context.Context, entries []*entity.CatalogEntry) error
}
