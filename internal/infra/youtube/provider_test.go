package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const searchResponse = `{
  "items": [
    {"id": {"kind": "youtube#video", "videoId": "vid-new"}},
    {"id": {"kind": "youtube#channel", "channelId": "UC123"}},
    {"id": {"kind": "youtube#video", "videoId": "vid-old"}}
  ]
}`

const videosResponse = `{
  "items": [
    {
      "id": "vid-old",
      "snippet": {
        "title": "Older",
        "description": "first upload",
        "channelId": "UC123",
        "channelTitle": "Tech Channel",
        "publishedAt": "2024-01-01T10:00:00Z",
        "thumbnails": {"default": {"url": "https://img/default.jpg"}}
      },
      "contentDetails": {"duration": "PT10M"}
    },
    {
      "id": "vid-new",
      "snippet": {
        "title": "Newer",
        "channelId": "UC123",
        "channelTitle": "Tech Channel",
        "publishedAt": "2024-02-01T10:00:00Z",
        "thumbnails": {
          "default": {"url": "https://img/default.jpg"},
          "high": {"url": "https://img/high.jpg"}
        }
      },
      "contentDetails": {"duration": "PT1H2M3S"}
    }
  ]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := New(context.Background(),
		option.WithAPIKey("test-key"),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return p.(*provider)
}

func TestProvider_SearchChannelVideos(t *testing.T) {
	var gotQuery map[string][]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/search"))
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	})

	ids, err := p.SearchChannelVideos(context.Background(), "UC123", 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"vid-new", "vid-old"}, ids)
	assert.Equal(t, []string{"UC123"}, gotQuery["channelId"])
	assert.Equal(t, []string{"5"}, gotQuery["maxResults"])
	assert.Equal(t, []string{"date"}, gotQuery["order"])
	assert.Equal(t, []string{"video"}, gotQuery["type"])
}

func TestProvider_SearchChannelVideos_ClampsPageSize(t *testing.T) {
	var gotMax string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("maxResults")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	ids, err := p.SearchChannelVideos(context.Background(), "UC123", 500)

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, "50", gotMax)
}

func TestProvider_SearchChannelVideos_Error(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	})

	ids, err := p.SearchChannelVideos(context.Background(), "UC123", 5)

	require.Error(t, err)
	assert.Nil(t, ids)
}

func TestProvider_FetchVideoDetails_KeepsRequestedOrder(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/videos"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videosResponse))
	})

	entries, err := p.FetchVideoDetails(context.Background(), []string{"vid-new", "vid-missing", "vid-old"})

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "vid-new", entries[0].EntryID)
	assert.Equal(t, "Newer", entries[0].Title)
	assert.Equal(t, "https://img/high.jpg", entries[0].ThumbnailURL)
	assert.Equal(t, 3723, entries[0].DurationSeconds)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), entries[0].PublishedAt)
	assert.True(t, entries[0].CachedAt.IsZero())

	assert.Equal(t, "vid-old", entries[1].EntryID)
	assert.Equal(t, "first upload", entries[1].Description)
	assert.Equal(t, "https://img/default.jpg", entries[1].ThumbnailURL)
	assert.Equal(t, 600, entries[1].DurationSeconds)
	assert.Equal(t, "Tech Channel", entries[1].SourceChannelTitle)
}

func TestProvider_FetchVideoDetails_Empty(t *testing.T) {
	p := newTestProvider(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	})

	entries, err := p.FetchVideoDetails(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIsConfigured(t *testing.T) {
	t.Parallel()

	assert.False(t, IsConfigured(""))
	assert.False(t, IsConfigured("   "))
	assert.False(t, IsConfigured("your-youtube-api-key-here"))
	assert.True(t, IsConfigured("AIza-real-key"))
}
