package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"worklog/internal/platform/config"
)

func TestOverrideWinsOverEnvironment(t *testing.T) {
	override := t.TempDir()
	t.Setenv("WORKLOG_DATA_DIR", t.TempDir())

	cfg, err := config.New(override)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DataDir != override {
		t.Fatalf("expected override %q, got %q", override, cfg.DataDir)
	}
	if cfg.LogPath != filepath.Join(override, "log.json") {
		t.Fatalf("unexpected log path %q", cfg.LogPath)
	}
	if cfg.DBPath != filepath.Join(override, "worklog.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.ExportersPath != filepath.Join(override, "exporters.yaml") {
		t.Fatalf("unexpected exporters path %q", cfg.ExportersPath)
	}
}

func TestEnvironmentWinsOverUserDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKLOG_DATA_DIR", dir)

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("expected env dir %q, got %q", dir, cfg.DataDir)
	}
}

func TestDefaultPeriodFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_period: weekly\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DefaultPeriod != "weekly" {
		t.Fatalf("expected weekly, got %q", cfg.DefaultPeriod)
	}
}

func TestDefaultPeriodFallsBackToDaily(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DefaultPeriod != "daily" {
		t.Fatalf("expected daily, got %q", cfg.DefaultPeriod)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_period: [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("expected decode error for malformed config")
	}
}
