// Package config loads the application configuration from a TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogFile string `toml:"log_file"`
}

// UI contains presentation settings.
type UI struct {
	// LoadingDelayMS is the minimum perceived latency of the recipe
	// list loading transition. Zero disables the delay (tests do this).
	LoadingDelayMS int `toml:"loading_delay_ms"`
	// DarkMode is the mode used before anything is persisted.
	DarkMode bool `toml:"dark_mode"`
}

// Logging contains log output settings.
type Logging struct {
	Level string `toml:"level"` // off, normal or verbose
}

// Config is the root configuration.
type Config struct {
	Paths   Paths   `toml:"paths"`
	UI      UI      `toml:"ui"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration, rooted under the user home
// directory.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".panela")
	return &Config{
		Paths: Paths{
			DataDir: base,
			LogFile: filepath.Join(base, "panela.log"),
		},
		UI: UI{
			LoadingDelayMS: 800,
		},
		Logging: Logging{
			Level: "normal",
		},
	}
}

// Load reads the config file at path, layered over the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".panela", "config.toml")
}

// DatabasePath returns the location of the key-value store file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "panela.db")
}

// LoadingDelay returns the configured minimum perceived latency as a
// duration.
func (c *Config) LoadingDelay() time.Duration {
	if c.UI.LoadingDelayMS <= 0 {
		return 0
	}
	return time.Duration(c.UI.LoadingDelayMS) * time.Millisecond
}

// EnsureDirectories creates the data directory and the log file parent.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, filepath.Dir(c.Paths.LogFile)}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
