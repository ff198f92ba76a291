package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/internal/styles"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "default", cfg.Tokens.Preset)
	assert.Equal(t, "auto", cfg.Appearance.Mode)
	assert.Equal(t, styles.DefaultCacheSize, cfg.Cache.Size)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`tokens:
  preset: modern
appearance:
  mode: dark
  watch_file: /tmp/appearance
cache:
  size: 64
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "modern", cfg.Tokens.Preset)
	assert.Equal(t, "dark", cfg.Appearance.Mode)
	assert.Equal(t, "/tmp/appearance", cfg.Appearance.WatchFile)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  preset: modern\n"), 0o644))
	t.Setenv("THEMEKIT_TOKENS_PRESET", "high-contrast")
	t.Setenv("THEMEKIT_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "high-contrast", cfg.Tokens.Preset)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("appearance:\n  mode: sepia\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.mode")
}
