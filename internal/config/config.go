// Package config loads application configuration from a YAML file,
// FITTRACK_ environment variables and command-line flags, in that order of
// precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the store locations and logging settings.
type Config struct {
	// DataDir is the writable install location holding the store file.
	DataDir string `koanf:"data_dir"`
	// DatabaseFile is the store file name inside DataDir.
	DatabaseFile string `koanf:"database_file"`
	// TemplatePath points at the bundled template store copied into
	// place on first run.
	TemplatePath string `koanf:"template_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:      DefaultDataDir(),
		DatabaseFile: "FitTrack.db",
		LogLevel:     "info",
	}
}

// DefaultDataDir returns the default writable location (~/.fittrack).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fittrack"
	}
	return filepath.Join(home, ".fittrack")
}

// Load layers defaults, an optional YAML file, environment variables and
// flags. Flag names use hyphens and map onto underscore keys.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("FITTRACK_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "FITTRACK_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		flagProvider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(flagProvider, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// StorePath is the resolved location of the writable store file.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// SlogLevel maps the configured level onto slog's.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
