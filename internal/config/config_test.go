package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.DatabaseFile != "FitTrack.db" {
		t.Errorf("Expected default database file 'FitTrack.db', but got '%s'", cfg.DatabaseFile)
	}
	if cfg.DataDir == "" {
		t.Error("Expected a default data directory")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', but got '%s'", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "data_dir: /var/lib/fittrack\ndatabase_file: custom.db\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.DataDir != "/var/lib/fittrack" {
		t.Errorf("Expected data_dir from the file, but got '%s'", cfg.DataDir)
	}
	if cfg.DatabaseFile != "custom.db" {
		t.Errorf("Expected database_file from the file, but got '%s'", cfg.DatabaseFile)
	}
	if cfg.StorePath() != "/var/lib/fittrack/custom.db" {
		t.Errorf("Unexpected store path: %s", cfg.StorePath())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("Expected Load() to fail for a missing config file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("FITTRACK_LOG_LEVEL", "error")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected the environment to override the file, but got '%s'", cfg.LogLevel)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("FITTRACK_DATA_DIR", "/from/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", DefaultDataDir(), "")
	flags.String("database-file", "FitTrack.db", "")
	if err := flags.Parse([]string{"--data-dir", "/from/flag"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.DataDir != "/from/flag" {
		t.Errorf("Expected the changed flag to win, but got '%s'", cfg.DataDir)
	}
	// An unchanged flag must not clobber values from other layers.
	if cfg.DatabaseFile != "FitTrack.db" {
		t.Errorf("Unexpected database file: %s", cfg.DatabaseFile)
	}
}

func TestSlogLevel(t *testing.T) {
	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tc := range testCases {
		cfg := Config{LogLevel: tc.level}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Errorf("Expected level %v for '%s', but got %v", tc.want, tc.level, got)
		}
	}
}
