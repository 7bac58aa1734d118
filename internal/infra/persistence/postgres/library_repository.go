package postgres

import (
	"context"
	"time"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// progressRepository implements the repository.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// UpsertProgress creates or overwrites the progress row of (UserID, VideoID).
func (repo *progressRepository) UpsertProgress(ctx context.Context, progress *entity.Progress) error {
	progressM := fromProgressDomain(progress)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"position_seconds", "completed_percent", "synced", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(progressM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVideoNotFound.WrapMessage("invalid video reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("progress out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert progress")
	}

	progress.ID = progressM.ID
	progress.UpdatedAt = progressM.UpdatedAt

	return nil
}

// FindProgressByUser returns the user's progress rows with their videos, most recently updated first.
func (repo *progressRepository) FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Progress, error) {
	var progressModels []*model.ProgressModel

	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&progressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find progress by user")
	}

	progress := make([]*entity.Progress, 0, len(progressModels))
	for _, progressM := range progressModels {
		progress = append(progress, toProgressDomain(progressM))
	}

	return progress, nil
}

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// UpsertFavorite creates the favorite of (UserID, VideoID) or refreshes its synced flag.
func (repo *favoriteRepository) UpsertFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"synced"}),
			},
			clause.Returning{},
		).
		Create(favoriteM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVideoNotFound.WrapMessage("invalid video reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes the favorite of (userID, videoID).
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID uuid.UUID, videoID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindFavoritesByUser returns the user's favorites with their videos, newest first.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// --- Mapper Functions ---

func toProgressDomain(data *model.ProgressModel) *entity.Progress {
	if data == nil {
		return nil
	}

	return &entity.Progress{
		ID:               data.ID,
		UserID:           data.UserID,
		VideoID:          data.VideoID,
		PositionSeconds:  data.PositionSeconds,
		CompletedPercent: data.CompletedPercent,
		Synced:           data.Synced,
		Video:            toCatalogEntryDomain(data.Video),
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromProgressDomain(data *entity.Progress) *model.ProgressModel {
	if data == nil {
		return nil
	}

	return &model.ProgressModel{
		ID:               data.ID,
		UserID:           data.UserID,
		VideoID:          data.VideoID,
		PositionSeconds:  data.PositionSeconds,
		CompletedPercent: data.CompletedPercent,
		Synced:           data.Synced,
		UpdatedAt:        time.Now(),
	}
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		VideoID:   data.VideoID,
		Synced:    data.Synced,
		Video:     toCatalogEntryDomain(data.Video),
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		VideoID:   data.VideoID,
		Synced:    data.Synced,
		CreatedAt: data.CreatedAt,
	}
}
