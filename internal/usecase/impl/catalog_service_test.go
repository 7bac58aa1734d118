package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	mockRepo "streamsync/internal/mocks/repository"
	mockSvc "streamsync/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testChannelID = "UCYfdidRxbB8Qhf0Nx7ioOYw"

type catalogServiceFixtures struct {
	service     *catalogService
	catalogRepo *mockRepo.MockCatalogRepository
	provider    *mockSvc.MockCatalogProvider
	now         time.Time
}

func createTestCatalogService(t *testing.T, withProvider bool) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	provider := mockSvc.NewMockCatalogProvider(t)

	params := CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}
	if withProvider {
		params.Provider = provider
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewCatalogService(params).(*catalogService)
	svc.now = fixedClock(now)

	return catalogServiceFixtures{service: svc, catalogRepo: catalogRepo, provider: provider, now: now}
}

func TestCatalogService_GetCatalog_EmptyChannel(t *testing.T) {
	fx := createTestCatalogService(t, true)

	_, err := fx.service.GetCatalog(context.Background(), "", 10)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
}

func TestCatalogService_GetCatalog_NoProviderIsSynthetic(t *testing.T) {
	fx := createTestCatalogService(t, false)

	result, err := fx.service.GetCatalog(context.Background(), testChannelID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceSynthetic, result.Source)
	assert.Len(t, result.Entries, 3)
}

func TestCatalogService_GetCatalog_FreshCacheSkipsProvider(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	cached := []*entity.CatalogEntry{
		{EntryID: "v2", SourceChannelID: testChannelID, CachedAt: fx.now.Add(-2 * time.Minute)},
		{EntryID: "v1", SourceChannelID: testChannelID, CachedAt: fx.now.Add(-2 * time.Minute)},
	}
	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(cached, nil).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceFresh, result.Source)
	assert.Equal(t, cached, result.Entries)
	fx.provider.AssertNotCalled(t, "SearchChannelVideos", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_GetCatalog_RefreshesStaleCache(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	stale := []*entity.CatalogEntry{{EntryID: "old", CachedAt: fx.now.Add(-time.Hour)}}
	fetched := []*entity.CatalogEntry{
		{EntryID: "new", Title: "", SourceChannelTitle: "", DurationSeconds: 3723},
	}

	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 5).Return(stale, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 5).Return([]string{"new"}, nil).Once()
	fx.provider.EXPECT().FetchVideoDetails(mock.Anything, []string{"new"}).Return(fetched, nil).Once()
	fx.catalogRepo.EXPECT().UpsertEntries(mock.Anything, fetched).RunAndReturn(
		func(_ context.Context, entries []*entity.CatalogEntry) error {
			for _, entry := range entries {
				entry.CachedAt = fx.now
			}

			return nil
		}).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 5)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceRefreshed, result.Source)
	require.Len(t, result.Entries, 1)
	entry := result.Entries[0]
	assert.Equal(t, "Untitled", entry.Title)
	assert.Equal(t, "Unknown Channel", entry.SourceChannelTitle)
	assert.Equal(t, testChannelID, entry.SourceChannelID)
	assert.Equal(t, fx.now, entry.PublishedAt)
	assert.Equal(t, fx.now, entry.CachedAt)
}

func TestCatalogService_GetCatalog_ProviderErrorServesStale(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	stale := []*entity.CatalogEntry{{EntryID: "old", CachedAt: fx.now.Add(-time.Hour)}}
	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(stale, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 10).Return(nil, errors.New("quota exceeded")).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceStale, result.Source)
	assert.Equal(t, stale, result.Entries)
	fx.catalogRepo.AssertNotCalled(t, "UpsertEntries", mock.Anything, mock.Anything)
}

func TestCatalogService_GetCatalog_DetailsErrorServesStale(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	stale := []*entity.CatalogEntry{{EntryID: "old", CachedAt: fx.now.Add(-time.Hour)}}
	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(stale, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 10).Return([]string{"x"}, nil).Once()
	fx.provider.EXPECT().FetchVideoDetails(mock.Anything, []string{"x"}).Return(nil, errors.New("503")).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceStale, result.Source)
}

func TestCatalogService_GetCatalog_EmptyProviderAndCacheIsSynthetic(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 2).Return(nil, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 2).Return([]string{}, nil).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 2)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceSynthetic, result.Source)
	assert.Len(t, result.Entries, 2)
	fx.catalogRepo.AssertNotCalled(t, "UpsertEntries", mock.Anything, mock.Anything)
}

func TestCatalogService_GetCatalog_UpsertFailureStillServesProviderEntries(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fetched := []*entity.CatalogEntry{{EntryID: "new", Title: "New"}}
	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(nil, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 10).Return([]string{"new"}, nil).Once()
	fx.provider.EXPECT().FetchVideoDetails(mock.Anything, []string{"new"}).Return(fetched, nil).Once()
	fx.catalogRepo.EXPECT().UpsertEntries(mock.Anything, fetched).Return(errors.New("disk full")).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceRefreshed, result.Source)
	assert.Equal(t, fetched, result.Entries)
}

func TestCatalogService_GetCatalog_CacheReadError(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(nil, errors.New("connection refused")).Once()

	_, err := fx.service.GetCatalog(ctx, testChannelID, 10)

	assert.Error(t, err)
}

func TestCatalogService_GetCatalog_DefaultMaxResults(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	cached := []*entity.CatalogEntry{{EntryID: "v1", CachedAt: fx.now}}
	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(cached, nil).Once()

	result, err := fx.service.GetCatalog(ctx, testChannelID, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceFresh, result.Source)
}

func TestCatalogService_GetCatalog_ConcurrentRefreshesShareOneFetch(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	fetched := []*entity.CatalogEntry{{EntryID: "new", Title: "New"}}

	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(nil, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 10).RunAndReturn(
		func(context.Context, string, int) ([]string, error) {
			close(entered)
			<-release

			return []string{"new"}, nil
		}).Once()
	fx.provider.EXPECT().FetchVideoDetails(mock.Anything, []string{"new"}).Return(fetched, nil).Once()
	fx.catalogRepo.EXPECT().UpsertEntries(mock.Anything, fetched).Return(nil).Once()

	var wg sync.WaitGroup
	results := make([]*entity.CatalogResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = fx.service.GetCatalog(ctx, testChannelID, 10)
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = fx.service.GetCatalog(ctx, testChannelID, 10)
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, entity.CatalogSourceRefreshed, results[0].Source)
	assert.Same(t, results[0], results[1])
}

func TestCatalogService_GetCatalog_CancelledLeaderDoesNotFailJoinedCaller(t *testing.T) {
	fx := createTestCatalogService(t, true)
	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	followerCtx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	fetched := []*entity.CatalogEntry{{EntryID: "new", Title: "New"}}

	fx.catalogRepo.EXPECT().FindByChannel(mock.Anything, testChannelID, 10).Return(nil, nil).Once()
	fx.provider.EXPECT().SearchChannelVideos(mock.Anything, testChannelID, 10).RunAndReturn(
		func(ctx context.Context, _ string, _ int) ([]string, error) {
			close(entered)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return []string{"new"}, nil
		}).Once()
	fx.provider.EXPECT().FetchVideoDetails(mock.Anything, []string{"new"}).Return(fetched, nil).Once()
	fx.catalogRepo.EXPECT().UpsertEntries(mock.Anything, fetched).Return(nil).Once()

	leaderErr := make(chan error, 1)
	go func() {
		_, err := fx.service.GetCatalog(leaderCtx, testChannelID, 10)
		leaderErr <- err
	}()
	<-entered

	type outcome struct {
		result *entity.CatalogResult
		err    error
	}
	followerDone := make(chan outcome, 1)
	go func() {
		result, err := fx.service.GetCatalog(followerCtx, testChannelID, 10)
		followerDone <- outcome{result: result, err: err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	follower := <-followerDone

	require.NoError(t, follower.err)
	require.NotNil(t, follower.result)
	assert.Equal(t, entity.CatalogSourceRefreshed, follower.result.Source)
	require.Len(t, follower.result.Entries, 1)
	assert.Equal(t, "new", follower.result.Entries[0].EntryID)
}

func TestCatalogService_GetVideoByID(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	video := &entity.CatalogEntry{EntryID: "v1"}
	fx.catalogRepo.EXPECT().FindByID(ctx, "v1").Return(video, nil).Once()
	fx.catalogRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrCatalogEntryNotFound).Once()

	got, err := fx.service.GetVideoByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, video, got)

	_, err = fx.service.GetVideoByID(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}
