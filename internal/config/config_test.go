package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file overriding a few keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-format: text\nui:\n  disable-mouse: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "tictactoe.log", conf.LogFile)
		assert.False(t, conf.UI.Inline)
		assert.True(t, conf.UI.DisableMouse)
		assert.False(t, conf.UI.MouseEnabled())
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.True(t, conf.UI.MouseEnabled())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: a log level in the environment
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Inline mode turns the mouse off", func(t *testing.T) {
		// Given: an inline UI with the mouse left on
		ui := UI{Inline: true}

		// Then: clicks cannot be mapped onto the board
		assert.False(t, ui.MouseEnabled())
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		// Given: a file that is not valid YAML
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
