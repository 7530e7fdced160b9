// Package config loads optional SocialBook defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalFile is looked up in the working directory before the user config dir.
const LocalFile = ".socialbook.yaml"

// Config holds defaults that command-line flags override.
type Config struct {
	Book    string `yaml:"book"`
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{Book: "socialbook.yaml", Format: "text"}
}

// Path returns the config file to use: LocalFile if present, otherwise
// <user config dir>/socialbook/config.yaml if present, otherwise "".
func Path() string {
	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	p := filepath.Join(configHome, "socialbook", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Load: parse %s: %w", path, err)
	}
	return cfg, nil
}
