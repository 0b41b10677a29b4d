package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enable   slog.Level
		disabled slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"warn level", "warn", slog.LevelWarn, slog.LevelInfo},
		{"default info", "", slog.LevelInfo, slog.LevelDebug},
		{"unknown falls back to info", "loud", slog.LevelInfo, slog.LevelDebug},
		{"upper case debug", "DEBUG", slog.LevelDebug, slog.LevelDebug - 1},
		{"mixed case error", " Error ", slog.LevelError, slog.LevelWarn},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level, &bytes.Buffer{})
			assert.True(t, logger.Enabled(ctx, tt.enable))
			assert.False(t, logger.Enabled(ctx, tt.disabled))
		})
	}
}

func TestWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf).With("component", "test")
	logger.Info("saved", "records", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "saved", line["msg"])
	assert.Equal(t, "test", line["component"])
	assert.EqualValues(t, 3, line["records"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
