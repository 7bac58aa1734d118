package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"streamsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "streamsync"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "streamsync", entry["service"])
	assert.Equal(t, "develop", entry["env"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
