// Package config provides configuration management for the sqlsubstr CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields (output mode, logging, batch concurrency).
package config

import (
	sharedcfg "github.com/leapstack-labs/sqlsubstr/internal/config"
)

// DialectConfig is an alias for the shared custom dialect entry.
type DialectConfig = sharedcfg.DialectConfig

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string          `koanf:"dialect"`
	BufferSize   int             `koanf:"buffer_size"`
	Concurrency  int             `koanf:"concurrency"`
	OutputFormat string          `koanf:"output"`
	Verbose      bool            `koanf:"verbose"`
	LogLevel     string          `koanf:"log_level"`
	DialectsFile string          `koanf:"dialects_file"`
	Dialects     []DialectConfig `koanf:"dialects"`

	// ProjectRoot is the directory the config file was found in (or CWD).
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultDialect     = sharedcfg.DefaultDialect
	DefaultBufferSize  = sharedcfg.DefaultBufferSize
	DefaultConcurrency = sharedcfg.DefaultConcurrency
	DefaultOutput      = sharedcfg.DefaultOutput
	DefaultLogLevel    = sharedcfg.DefaultLogLevel
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Dialect:      DefaultDialect,
		BufferSize:   DefaultBufferSize,
		Concurrency:  DefaultConcurrency,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
	}
}
