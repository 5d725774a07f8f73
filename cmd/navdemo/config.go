package main

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/constants"
)

// Config holds navdemo settings.
type Config struct {
	Locale   string `koanf:"locale"`    // e.g. "en", "fr"
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error"
	LogPath  string `koanf:"log_path"`  // empty logs to stderr only
	Debug    bool   `koanf:"debug"`     // log ignored coordinator transitions
}

// LoadConfig reads every existing config file in priority order; later files
// override earlier ones.
func LoadConfig() (*Config, error) {
	return loadConfigFrom(configPaths())
}

func loadConfigFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Locale:   constants.DefaultLocale,
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogPath != "" {
		cfg.LogPath = expandPath(cfg.LogPath)
	}

	return cfg, nil
}

func configPaths() []string {
	paths := []string{}

	// 1. ~/.config/navdemo/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "navdemo", "config.toml"))
	}

	// 2. ./navdemo.toml (pwd, highest priority)
	paths = append(paths, "navdemo.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
