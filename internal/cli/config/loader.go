package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "github.com/leapstack-labs/sqlsubstr/internal/config"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// envPrefix is the prefix of environment variables read into the config.
const envPrefix = "SQLSUBSTR_"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// resolveConfigFile picks the config file to load.
// Priority: explicit path > sqlsubstr.yaml/.yml found upward from CWD.
func resolveConfigFile(explicit string) (path, root string) {
	if explicit != "" {
		if abs, err := filepath.Abs(explicit); err == nil {
			return explicit, filepath.Dir(abs)
		}
		return explicit, filepath.Dir(explicit)
	}

	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return "", "."
	}
	if dir := intconfig.FindProjectRoot(cwd, maxUpwardSearchLevels); dir != "" {
		return intconfig.FindConfigFile(dir), dir
	}
	return "", cwd
}

// flagKey maps a CLI flag name to its config key.
func flagKey(name string) string {
	// Transform kebab-case to snake_case for config keys
	return strings.ReplaceAll(name, "-", "_")
}

// LoadConfig loads configuration from defaults, file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect":     DefaultDialect,
		"buffer_size": DefaultBufferSize,
		"concurrency": DefaultConcurrency,
		"output":      DefaultOutput,
		"log_level":   DefaultLogLevel,
		"verbose":     false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	var projectRoot string
	configFileUsed, projectRoot = resolveConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (SQLSUBSTR_ prefix)
	// Transform: SQLSUBSTR_BUFFER_SIZE -> buffer_size
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct. Env values arrive as strings, so the
	// decoder must accept weakly typed input.
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.ProjectRoot = projectRoot
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))

	// A dialects file named in config is relative to the config file's directory.
	if cfg.DialectsFile != "" && !filepath.IsAbs(cfg.DialectsFile) && (flags == nil || !flags.Changed("dialects-file")) {
		cfg.DialectsFile = filepath.Join(projectRoot, cfg.DialectsFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// AllDialects returns the custom dialects from the dialects file followed by
// the inline `dialects:` entries, so inline entries win on name clashes.
func (c *Config) AllDialects() ([]DialectConfig, error) {
	var all []DialectConfig
	if c.DialectsFile != "" {
		fromFile, err := intconfig.LoadDialectFile(c.DialectsFile)
		if err != nil {
			return nil, err
		}
		all = append(all, fromFile...)
	}
	for _, d := range c.Dialects {
		intconfig.ApplyDefaults(&d)
		all = append(all, d)
	}
	return all, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger builds the CLI logger writing text records to w.
// Verbose forces debug level.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	} else if l, err := parseLevel(cfg.LogLevel); err == nil {
		level = l
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
