package impl

import (
	"context"
	"testing"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	mockRepo "streamsync/internal/mocks/repository"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type libraryServiceFixtures struct {
	service      usecase.LibraryUsecase
	catalogRepo  *mockRepo.MockCatalogRepository
	progressRepo *mockRepo.MockProgressRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestLibraryService(t *testing.T) libraryServiceFixtures {
	fx := libraryServiceFixtures{
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		progressRepo: mockRepo.NewMockProgressRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
	}
	fx.service = NewLibraryService(LibraryServiceParams{
		CatalogRepo:  fx.catalogRepo,
		ProgressRepo: fx.progressRepo,
		FavoriteRepo: fx.favoriteRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestLibraryService_SaveProgress(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.progressRepo.EXPECT().UpsertProgress(ctx, mock.MatchedBy(func(p *entity.Progress) bool {
		return p.UserID == userID && p.VideoID == "v1" && p.PositionSeconds == 120 && p.CompletedPercent == 40 && p.Synced
	})).Return(nil).Once()

	progress, err := fx.service.SaveProgress(ctx, userID, &usecase.ProgressInput{VideoID: "v1", PositionSeconds: 120, CompletedPercent: 40})

	require.NoError(t, err)
	assert.True(t, progress.Synced)
}

func TestLibraryService_SaveProgress_Validation(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.ProgressInput
	}{
		{name: "missing video", input: &usecase.ProgressInput{PositionSeconds: 1}},
		{name: "negative position", input: &usecase.ProgressInput{VideoID: "v1", PositionSeconds: -1}},
		{name: "percent above 100", input: &usecase.ProgressInput{VideoID: "v1", CompletedPercent: 100.5}},
		{name: "negative percent", input: &usecase.ProgressInput{VideoID: "v1", CompletedPercent: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.SaveProgress(ctx, uuid.New(), tt.input)
			assert.Error(t, err)
		})
	}
	fx.progressRepo.AssertNotCalled(t, "UpsertProgress", mock.Anything, mock.Anything)
}

func TestLibraryService_AddFavorite(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()
	userID := uuid.New()
	video := &entity.CatalogEntry{EntryID: "v1", Title: "Video"}

	fx.catalogRepo.EXPECT().FindByID(ctx, "v1").Return(video, nil).Once()
	fx.favoriteRepo.EXPECT().UpsertFavorite(ctx, mock.Anything).Return(nil).Once()

	favorite, err := fx.service.AddFavorite(ctx, userID, "v1")

	require.NoError(t, err)
	assert.Equal(t, video, favorite.Video)
	assert.Equal(t, userID, favorite.UserID)
}

func TestLibraryService_AddFavorite_UnknownVideo(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrCatalogEntryNotFound).Once()

	_, err := fx.service.AddFavorite(ctx, uuid.New(), "nope")

	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
	fx.favoriteRepo.AssertNotCalled(t, "UpsertFavorite", mock.Anything, mock.Anything)
}

func TestLibraryService_RemoveFavorite(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().DeleteFavorite(ctx, userID, "v1").Return(nil).Once()
	fx.favoriteRepo.EXPECT().DeleteFavorite(ctx, userID, "v2").Return(repository.ErrFavoriteNotFound).Once()

	assert.NoError(t, fx.service.RemoveFavorite(ctx, userID, "v1"))
	assert.True(t, errors.Is(fx.service.RemoveFavorite(ctx, userID, "v2"), domainerrors.ErrFavoriteNotFound))
}

func TestLibraryService_Lists(t *testing.T) {
	fx := createTestLibraryService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.progressRepo.EXPECT().FindProgressByUser(ctx, userID).Return([]*entity.Progress{{VideoID: "v1"}}, nil).Once()
	fx.favoriteRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return(nil, errors.New("db down")).Once()

	progress, err := fx.service.ListProgress(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, progress, 1)

	_, err = fx.service.ListFavorites(ctx, userID)
	assert.Error(t, err)
}
