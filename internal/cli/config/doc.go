// Package config defines the CLI configuration structure and its
// koanf-based loader.
//
// Sources are merged with priority env > file > defaults. Environment
// variables use the CATALOGUE_ prefix with underscores mapping to key
// separators (CATALOGUE_LOG_LEVEL -> log.level).
package config
