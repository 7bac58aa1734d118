package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB returns a PostgreSQL-dialect session that builds statements without a server
// and records every INSERT it would have sent.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=streamsync dbname=streamsync sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	captured := make([]capturedStatement, 0, 1)
	err = db.Callback().Create().After("gorm:create").Register("test:capture", func(tx *gorm.DB) {
		captured = append(captured, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	})
	require.NoError(t, err)

	return db, &captured
}

func onConflictClause(t *testing.T, sql string) string {
	t.Helper()

	idx := strings.Index(sql, "ON CONFLICT")
	require.GreaterOrEqual(t, idx, 0, "statement has no ON CONFLICT clause: %s", sql)

	return sql[idx:]
}

func TestDeviceTokenRepository_UpsertToken_Statement(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewDeviceTokenRepository(db)

	token := &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Token:    "fcm-token-0123456789",
		Platform: entity.PlatformIOS,
	}

	_, err := repo.UpsertToken(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, *captured, 1)

	conflict := onConflictClause(t, (*captured)[0].sql)

	tests := []struct {
		name     string
		fragment string
	}{
		{name: "keyed on the token value", fragment: `ON CONFLICT ("token") DO UPDATE SET`},
		{name: "moves ownership", fragment: `"user_id"="excluded"."user_id"`},
		{name: "updates platform", fragment: `"platform"="excluded"."platform"`},
		{name: "touches updated_at", fragment: `"updated_at"="excluded"."updated_at"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, conflict, tt.fragment)
		})
	}

	assert.NotContains(t, conflict, `"token"="excluded"."token"`)
	assert.NotContains(t, conflict, `"created_at"="excluded"."created_at"`)
	assert.Contains(t, (*captured)[0].vars, token.UserID)
}

func TestCatalogRepository_UpsertEntries_Statement(t *testing.T) {
	db, captured := newDryRunDB(t)
	cachedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &catalogRepository{
		db:  db,
		now: func() time.Time { return cachedAt },
	}

	staleStamp := cachedAt.Add(-48 * time.Hour)
	publishedAt := cachedAt.Add(-72 * time.Hour)
	entries := []*entity.CatalogEntry{
		{EntryID: "vid-1", Title: "First", SourceChannelID: "chan-1", PublishedAt: publishedAt, CachedAt: staleStamp},
		{EntryID: "vid-2", Title: "Second", SourceChannelID: "chan-1", PublishedAt: publishedAt, CachedAt: staleStamp},
	}

	err := repo.UpsertEntries(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, *captured, 1)

	for _, entry := range entries {
		assert.Equal(t, cachedAt, entry.CachedAt)
	}

	conflict := onConflictClause(t, (*captured)[0].sql)
	assert.Contains(t, conflict, `ON CONFLICT ("video_id") DO UPDATE SET`)
	for _, column := range []string{
		"title", "description", "thumbnail_url", "channel_id",
		"channel_title", "published_at", "duration", "cached_at",
	} {
		assert.Contains(t, conflict, `"`+column+`"="excluded"."`+column+`"`)
	}

	assert.Contains(t, (*captured)[0].vars, cachedAt)
	assert.NotContains(t, (*captured)[0].vars, staleStamp)
}

func TestCatalogRepository_UpsertEntries_Empty(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.UpsertEntries(context.Background(), nil))
	assert.Empty(t, *captured)
}

func TestLibraryRepositories_Upsert_Statements(t *testing.T) {
	db, captured := newDryRunDB(t)
	userID := uuid.New()

	require.NoError(t, NewProgressRepository(db).UpsertProgress(context.Background(), &entity.Progress{
		UserID:           userID,
		VideoID:          "vid-1",
		PositionSeconds:  90,
		CompletedPercent: 40,
	}))
	require.NoError(t, NewFavoriteRepository(db).UpsertFavorite(context.Background(), &entity.Favorite{
		UserID:  userID,
		VideoID: "vid-1",
	}))
	require.Len(t, *captured, 2)

	progress := onConflictClause(t, (*captured)[0].sql)
	assert.Contains(t, progress, `ON CONFLICT ("user_id","video_id") DO UPDATE SET`)
	assert.Contains(t, progress, `"position_seconds"="excluded"."position_seconds"`)
	assert.Contains(t, progress, `"completed_percent"="excluded"."completed_percent"`)

	favorite := onConflictClause(t, (*captured)[1].sql)
	assert.Contains(t, favorite, `ON CONFLICT ("user_id","video_id") DO UPDATE SET`)
	assert.NotContains(t, favorite, `"user_id"="excluded"."user_id"`)
}
