// Package config handles loading the user preferences file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable preferences. Everything has a working
// default; the file is optional.
type Config struct {
	DataDir      string `toml:"data_dir"`
	DatabaseFile string `toml:"database_file"`
	Theme        string `toml:"theme"`
	Locale       string `toml:"locale"`

	Window  WindowConfig  `toml:"window"`
	Scripts ScriptsConfig `toml:"scripts"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ScriptsConfig struct {
	// Enabled controls whether action blocks may run user-supplied code.
	Enabled bool `toml:"enabled"`
	// Shell overrides the shell used to run scripts ($SHELL when empty).
	Shell string `toml:"shell"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clipdeck", "config.toml")
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir:      filepath.Join(home, ".local", "share", "clipdeck"),
		DatabaseFile: "clipdeck.db",
		Theme:        "dark",
		Locale:       "en",
		Window:       WindowConfig{Width: 1200, Height: 800},
		Scripts:      ScriptsConfig{Enabled: true},
	}
}

// Load reads the config file at path, layering it over the defaults and
// applying environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// DatabasePath returns the absolute path of the SQLite file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CLIPDECK_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("CLIPDECK_SCRIPTS"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Scripts.Enabled = enabled
		}
	}
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.DatabaseFile == "" {
		return fmt.Errorf("database_file must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive")
	}
	return nil
}
