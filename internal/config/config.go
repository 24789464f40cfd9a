// Package config handles loading taskdeck.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the taskdeck.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Lists   Lists   `toml:"lists"`
	UI      UI      `toml:"ui"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Path is the location of the JSON task document. Defaults to
	// ~/.local/share/taskdeck/tasks.json.
	Path string `toml:"path"`
}

// Lists contains list-related configuration.
type Lists struct {
	// DefaultStrategy is the ordering strategy applied when a fresh
	// document is created.
	DefaultStrategy string `toml:"default-strategy"`
}

// UI contains presentation configuration.
type UI struct {
	// NoColor disables colored output.
	NoColor bool `toml:"no-color"`
}

// Load loads configuration from the global config file and the working
// directory, with working-directory values winning. Returns an empty config
// if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	merged := &Config{}
	for _, path := range []string{globalPath, filepath.Join(dir, "taskdeck.toml")} {
		cfg, err := loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			continue
		}
		overlay(merged, cfg)
	}
	return merged, nil
}

// DocumentPath resolves the task document location, falling back to the
// default under the user's data directory.
func (c *Config) DocumentPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "taskdeck", "tasks.json"), nil
}

func globalConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskdeck", "taskdeck.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "taskdeck", "taskdeck.toml"), nil
}

// loadConfigFile reads one config file. A missing file returns nil without
// error.
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// overlay copies set fields from src onto dst.
func overlay(dst, src *Config) {
	if src.Storage.Path != "" {
		dst.Storage.Path = src.Storage.Path
	}
	if src.Lists.DefaultStrategy != "" {
		dst.Lists.DefaultStrategy = src.Lists.DefaultStrategy
	}
	if src.UI.NoColor {
		dst.UI.NoColor = true
	}
}
