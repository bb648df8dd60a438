package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.LoadingDelayMS != 800 {
		t.Fatalf("expected default loading delay, got %d", cfg.UI.LoadingDelayMS)
	}
	if cfg.Logging.Level != "normal" {
		t.Fatalf("expected normal log level, got %s", cfg.Logging.Level)
	}
	if cfg.UI.DarkMode {
		t.Fatal("expected light mode default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[ui]\nloading_delay_ms = 0\ndark_mode = true\n\n[logging]\nlevel = \"verbose\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LoadingDelay() != 0 {
		t.Fatalf("expected no delay, got %v", cfg.LoadingDelay())
	}
	if !cfg.UI.DarkMode {
		t.Fatal("expected dark mode")
	}
	if cfg.Logging.Level != "verbose" {
		t.Fatalf("expected verbose, got %s", cfg.Logging.Level)
	}
	// Untouched sections keep defaults.
	if cfg.Paths.DataDir == "" {
		t.Fatal("data dir default lost")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\nbroken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadingDelay(t *testing.T) {
	cfg := Default()
	cfg.UI.LoadingDelayMS = 250
	if cfg.LoadingDelay() != 250*time.Millisecond {
		t.Fatalf("got %v", cfg.LoadingDelay())
	}
	cfg.UI.LoadingDelayMS = -1
	if cfg.LoadingDelay() != 0 {
		t.Fatalf("negative delay should clamp to 0, got %v", cfg.LoadingDelay())
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
	// Sample must itself be loadable.
	if _, err := Load(path); err != nil {
		t.Fatalf("sample does not parse: %v", err)
	}
}
