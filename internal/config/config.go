// Package config loads the application configuration from a JSON file in the
// user config directory, with LINEUP_* environment variables taking
// precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

const (
	appName        = "lineup"
	configFileName = "lineup.json"
)

type Config struct {
	// Debug enables verbose logging to a rotating file in the data
	// directory.
	Debug bool `json:"debug,omitempty" envconfig:"DEBUG"`

	// DataDirectory overrides where logs and caches are stored.
	DataDirectory string `json:"data_directory,omitempty" envconfig:"DATA_DIR"`

	// DisableUpdateCheck turns off the background check for new releases.
	DisableUpdateCheck bool `json:"disable_update_check,omitempty" envconfig:"DISABLE_UPDATE_CHECK"`
}

// GlobalConfig returns the path of the global configuration file.
func GlobalConfig() string {
	if p := os.Getenv("LINEUP_CONFIG_HOME"); p != "" {
		return filepath.Join(p, configFileName)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appName, configFileName)
}

// GlobalConfigData returns the path of the data-directory marker file; its
// directory is where logs and caches live.
func GlobalConfigData() string {
	if p := os.Getenv("LINEUP_DATA_HOME"); p != "" {
		return filepath.Join(p, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", appName, configFileName)
}

// Load reads the global configuration file, if present, then applies
// environment overrides.
func Load() (*Config, error) {
	cfg := &Config{
		DataDirectory: filepath.Dir(GlobalConfigData()),
	}

	data, err := os.ReadFile(GlobalConfig())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file is fine; defaults plus environment apply.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", GlobalConfig(), err)
		}
	}

	if err := envconfig.Process(appName, cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}

var get = sync.OnceValue(func() *Config {
	cfg, err := Load()
	if err != nil {
		slog.Warn("Falling back to default config", "error", err)
		return &Config{DataDirectory: filepath.Dir(GlobalConfigData())}
	}
	return cfg
})

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	return get()
}
