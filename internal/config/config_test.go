package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks format validations and defaulting for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty config gets defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultListenAddress, cfg.ListenAddress)
	require.Equal(t, DefaultScriptureBaseURL, cfg.ScriptureBaseURL)
	require.Equal(t, DefaultScriptureBibleID, cfg.ScriptureBibleID)
	require.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)

	// Bad listen address.
	cfg = &Config{ListenAddress: "bad:address"}
	require.Error(t, Validate(cfg))

	// Bad scripture URL.
	cfg = &Config{ScriptureBaseURL: "not a url"}
	require.Error(t, Validate(cfg))

	// Nil config.
	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ListenAddress:    "127.0.0.1:9999",
		ScriptureBaseURL: "https://scripture.local/v1",
		FetchTimeout:     2 * time.Second,
		LogLevel:         "debug",
	}

	require.NoError(t, Save(path, cfg))

	t.Setenv("SCRIPTURE_API_KEY", "test-key")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ListenAddress, loaded.ListenAddress)
	require.Equal(t, cfg.ScriptureBaseURL, loaded.ScriptureBaseURL)
	require.Equal(t, cfg.FetchTimeout, loaded.FetchTimeout)
	require.Equal(t, "test-key", loaded.ScriptureAPIKey)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadMissingFileUsesDefaults verifies a missing settings file is not an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultListenAddress, cfg.ListenAddress)
}
