package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the versewake-server settings.
type Config struct {
	// ListenAddress is the address the HTTP API listens on.
	ListenAddress string `yaml:"listen_addr"`
	// AlarmsFile is the path to the JSON file storing alarm records.
	AlarmsFile string `yaml:"alarms_file"`
	// SettingsFile is the path to the JSON file storing passage settings.
	SettingsFile string `yaml:"settings_file"`
	// ScriptureBaseURL is the base URL of the scripture REST API.
	ScriptureBaseURL string `yaml:"scripture_base_url"`
	// ScriptureBibleID selects the Bible edition used for passage fetches.
	ScriptureBibleID string `yaml:"scripture_bible_id"`
	// FetchTimeout is the duration for remote passage fetches.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// LogLevel is the minimum level for log output (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// ScriptureAPIKey authenticates against the scripture API. It is read
	// from the SCRIPTURE_API_KEY environment variable, never from YAML.
	ScriptureAPIKey string `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default filename for daemon settings.
	DefaultConfigFilename = "versewake-settings.yaml"

	// DefaultAlarmsFilename is the default filename for alarm records JSON.
	DefaultAlarmsFilename = "versewake-alarms.json"

	// DefaultPassageSettingsFilename is the default filename for passage settings JSON.
	DefaultPassageSettingsFilename = "versewake-passage-settings.json"

	// DefaultListenAddress is the default HTTP API listen address.
	DefaultListenAddress = "127.0.0.1:8723"

	// DefaultScriptureBaseURL is the default scripture API endpoint.
	DefaultScriptureBaseURL = "https://api.scripture.api.bible/v1"

	// DefaultScriptureBibleID is the King James Version edition id.
	DefaultScriptureBibleID = "de4e12af7f28f599-02"

	// DefaultFetchTimeout is the default duration for remote passage fetches.
	DefaultFetchTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600

	// apiKeyEnvVar names the environment variable carrying the scripture API key.
	apiKeyEnvVar = "SCRIPTURE_API_KEY"
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Load reads configuration from the provided path and validates essential fields.
// A missing file yields the defaults rather than an error so the daemon can
// start without any prior setup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// First run, defaults below.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Seed the environment from a .env file when present; a missing file is fine.
	_ = godotenv.Load()

	cfg.ScriptureAPIKey = os.Getenv(apiKeyEnvVar)

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultListenAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if cfg.AlarmsFile == "" {
		cfg.AlarmsFile = DefaultAlarmsFilename
	}

	if cfg.SettingsFile == "" {
		cfg.SettingsFile = DefaultPassageSettingsFilename
	}

	if cfg.ScriptureBaseURL == "" {
		cfg.ScriptureBaseURL = DefaultScriptureBaseURL
	}

	if _, err := url.ParseRequestURI(cfg.ScriptureBaseURL); err != nil {
		return fmt.Errorf("invalid scripture base URL: %w", err)
	}

	if cfg.ScriptureBibleID == "" {
		cfg.ScriptureBibleID = DefaultScriptureBibleID
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}

	return nil
}
