// Package config defines the CLI configuration structure.
package config

import (
	"os"
	"path/filepath"
)

// Config is the configuration for the catalogue CLI.
type Config struct {
	// Prompt is the interactive prompt text.
	Prompt string `koanf:"prompt"`

	History HistoryConfig `koanf:"history"`
	RC      RCConfig      `koanf:"rc"`
	Log     LogConfig     `koanf:"log"`
	Plugin  PluginConfig  `koanf:"plugin"`
}

// HistoryConfig controls history persistence.
type HistoryConfig struct {
	// File is the plain-text history file path; empty disables
	// persistence.
	File string `koanf:"file"`
	// Max bounds the in-memory history length.
	Max int `koanf:"max"`
}

// RCConfig points at the startup pre-seed file of alias/set lines.
type RCConfig struct {
	File string `koanf:"file"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

// PluginConfig names where the host should look for command modules.
// Discovery itself happens on the host side.
type PluginConfig struct {
	Dir string `koanf:"dir"`
}

// Dir returns the per-user configuration directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".catalogue")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "cli.yaml")
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		Prompt: "catalogue> ",
		History: HistoryConfig{
			File: filepath.Join(Dir(), "history"),
			Max:  1000,
		},
		RC: RCConfig{
			File: filepath.Join(Dir(), "cataloguerc"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
