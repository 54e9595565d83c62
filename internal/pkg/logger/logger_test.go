//go:build unit

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := config.LogConfig{
		Level:          "warn",
		TimeZone:       "UTC-3",
		TimeFormat:     "2006-01-02",
		TimeZoneOffset: -10800,
	}

	t.Run("json output honours level and time format", func(t *testing.T) {
		var buf bytes.Buffer
		l := logger.New(cfg, &buf, true)

		l.Info("hidden")
		l.Warn("shown", "event_id", "7")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "7", entry["event_id"])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, entry["time"])
	})

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger.New(cfg, &buf, false).Error("boom")
		assert.Contains(t, buf.String(), "msg=boom")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
