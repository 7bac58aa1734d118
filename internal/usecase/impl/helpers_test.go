package impl

import (
	"io"
	"log/slog"
	"time"

	"streamsync/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			FreshnessWindow:   10 * time.Minute,
			DefaultMaxResults: 10,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
