package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	t.Run("JSON format", func(t *testing.T) {
		// Given: a JSON logger at info level
		out := &bytes.Buffer{}
		log := New("info", FormatJSON, out)

		// When: logging below and at the level
		log.Debug("hidden")
		log.Info("move accepted", "cell", 4)

		// Then: only the info record is written, as JSON
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), `"msg":"move accepted"`)
		assert.Contains(t, out.String(), `"cell":4`)
	})

	t.Run("Text format", func(t *testing.T) {
		// Given: a text logger at debug level
		out := &bytes.Buffer{}
		log := New("debug", FormatText, out)

		// When: logging a debug record
		log.Debug("move rejected", "reason", "occupied")

		// Then: the record is written in logfmt style
		assert.Contains(t, out.String(), "move rejected")
		assert.Contains(t, out.String(), "reason=occupied")
		assert.NotContains(t, out.String(), "{")
	})

	t.Run("Text format respects the level", func(t *testing.T) {
		// Given: a text logger at warn level
		out := &bytes.Buffer{}
		log := New("warn", FormatText, out)

		// When: logging at info
		log.Info("game restarted")

		// Then: nothing is written
		assert.Empty(t, out.String())
	})
}
