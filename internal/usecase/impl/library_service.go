package impl

import (
	"context"
	"log/slog"

	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type libraryService struct {
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	ProgressRepo repository.ProgressRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewLibraryService creates the progress and favorites use case.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		catalogRepo:  params.CatalogRepo,
		progressRepo: params.ProgressRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (s *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SaveProgress overwrites the user's playback position for a video.
func (s *libraryService) SaveProgress(ctx context.Context, userID uuid.UUID, input *usecase.ProgressInput) (*entity.Progress, error) {
	if input == nil || input.VideoID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "video id is required")
	}
	if input.PositionSeconds < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("positionSeconds must not be negative")
	}
	if input.CompletedPercent < 0 || input.CompletedPercent > 100 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("completedPercent must be between 0 and 100")
	}

	progress := &entity.Progress{
		ID:               uuid.New(),
		UserID:           userID,
		VideoID:          input.VideoID,
		PositionSeconds:  input.PositionSeconds,
		CompletedPercent: input.CompletedPercent,
		Synced:           true,
	}
	if err := s.progressRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, errors.Wrap(err, "failed to save progress")
	}

	return progress, nil
}

// ListProgress returns the user's progress, most recently updated first.
func (s *libraryService) ListProgress(ctx context.Context, userID uuid.UUID) ([]*entity.Progress, error) {
	progress, err := s.progressRepo.FindProgressByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress")
	}

	return progress, nil
}

// AddFavorite favorites a cached video. Adding it twice keeps a single favorite.
func (s *libraryService) AddFavorite(ctx context.Context, userID uuid.UUID, videoID string) (*entity.Favorite, error) {
	if videoID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "video id is required")
	}

	video, err := s.catalogRepo.FindByID(ctx, videoID)
	if errors.Is(err, repository.ErrCatalogEntryNotFound) {
		return nil, domainerrors.ErrVideoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find video")
	}

	favorite := &entity.Favorite{
		ID:      uuid.New(),
		UserID:  userID,
		VideoID: videoID,
		Synced:  true,
	}
	if err := s.favoriteRepo.UpsertFavorite(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to add favorite")
	}
	favorite.Video = video

	s.log(ctx).Debug("Favorite added", slog.String("user_id", userID.String()), slog.String("video_id", videoID))

	return favorite, nil
}

// RemoveFavorite un-favorites a video.
func (s *libraryService) RemoveFavorite(ctx context.Context, userID uuid.UUID, videoID string) error {
	err := s.favoriteRepo.DeleteFavorite(ctx, userID, videoID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return domainerrors.ErrFavoriteNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites returns the user's favorites, newest first.
func (s *libraryService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := s.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
