package postgres

import (
	"context"
	"time"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const catalogUpsertBatchSize = 100

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByChannel returns the newest cached entries of a channel.
func (repo *catalogRepository) FindByChannel(ctx context.Context, channelID string, limit int) ([]*entity.CatalogEntry, error) {
	var entryModels []*model.CatalogEntryModel

	query := repo.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("published_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find catalog entries by channel")
	}

	entries := make([]*entity.CatalogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCatalogEntryDomain(entryM))
	}

	return entries, nil
}

// FindByID retrieves a single cached entry by its video id.
func (repo *catalogRepository) FindByID(ctx context.Context, entryID string) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", entryID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog entry by ID")
	}

	return toCatalogEntryDomain(&entryM), nil
}

// UpsertEntries writes the entries keyed on video id. Every column except the key is overwritten.
func (repo *catalogRepository) UpsertEntries(ctx context.Context, entries []*entity.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	cachedAt := repo.now().UTC()
	entryModels := make([]*model.CatalogEntryModel, 0, len(entries))
	for _, entry := range entries {
		entry.CachedAt = cachedAt
		entryModels = append(entryModels, fromCatalogEntryDomain(entry))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "thumbnail_url", "channel_id",
				"channel_title", "published_at", "duration", "cached_at",
			}),
		}).
		CreateInBatches(entryModels, catalogUpsertBatchSize).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert catalog entries")
	}

	return nil
}

// --- Mapper Functions ---

func toCatalogEntryDomain(data *model.CatalogEntryModel) *entity.CatalogEntry {
	if data == nil {
		return nil
	}

	return &entity.CatalogEntry{
		EntryID:            data.VideoID,
		Title:              data.Title,
		Description:        data.Description,
		ThumbnailURL:       data.ThumbnailURL,
		SourceChannelID:    data.ChannelID,
		SourceChannelTitle: data.ChannelTitle,
		PublishedAt:        data.PublishedAt,
		DurationSeconds:    data.Duration,
		CachedAt:           data.CachedAt,
	}
}

func fromCatalogEntryDomain(data *entity.CatalogEntry) *model.CatalogEntryModel {
	if data == nil {
		return nil
	}

	return &model.CatalogEntryModel{
		VideoID:      data.EntryID,
		Title:        data.Title,
		Description:  data.Description,
		ThumbnailURL: data.ThumbnailURL,
		ChannelID:    data.SourceChannelID,
		ChannelTitle: data.SourceChannelTitle,
		PublishedAt:  data.PublishedAt,
		Duration:     data.DurationSeconds,
		CachedAt:     data.CachedAt,
	}
}
