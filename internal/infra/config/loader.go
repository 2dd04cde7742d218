// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// ConfigFileName is the name of the launcher configuration file.
const ConfigFileName = "config.toml"

const configDirName = "ziri-launcher"

// Environment variables that override file configuration.
const (
	EnvDelegate = "ZIRI_LAUNCHER_DELEGATE"
	EnvRunner   = "ZIRI_LAUNCHER_RUNNER"
	EnvLogFile  = "ZIRI_LAUNCHER_LOG_FILE"
	EnvLogLevel = "ZIRI_LAUNCHER_LOG_LEVEL"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the global TOML file and the environment.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/ziri-launcher)
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDirName)
}

// Load returns the merged configuration: default <- global file <- environment
// (later takes precedence). Loading never blocks delegation: a missing file
// yields defaults and a malformed file yields defaults plus a warning on the
// returned config.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	file, err := l.loadGlobalFile()
	switch {
	case err != nil && !errors.Is(err, os.ErrNotExist):
		base.Warnings = append(base.Warnings, fmt.Sprintf("ignoring config: %v", err))
	case file != nil:
		base = mergeConfigs(base, file)
	}

	applyEnv(base)
	return base, nil
}

// loadGlobalFile loads the configuration file from the global config directory.
func (l *Loader) loadGlobalFile() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}

	path := filepath.Join(l.globalConfDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of overlay onto base.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	if overlay.Delegate != "" {
		base.Delegate = overlay.Delegate
	}
	if overlay.Runner != "" {
		base.Runner = overlay.Runner
	}
	if overlay.Log.File != "" {
		base.Log.File = overlay.Log.File
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
	return base
}

// applyEnv overrides configuration from environment variables.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvDelegate); v != "" {
		cfg.Delegate = v
	}
	if v := os.Getenv(EnvRunner); v != "" {
		cfg.Runner = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
