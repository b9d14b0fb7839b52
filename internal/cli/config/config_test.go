package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sqlsubstr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.StringP("dialect", "d", "", "dialect")
	flags.Int("buffer-size", DefaultBufferSize, "buffer size")
	flags.String("dialects-file", "", "dialects file")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_FileDiscoveredUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	writeConfig(t, root, "dialect: sqlite\nbuffer_size: 64\n")
	nested := filepath.Join(root, "queries", "daily")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Dialect)
	assert.Equal(t, 64, cfg.BufferSize)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, "sqlsubstr.yaml"), GetConfigFileUsed())
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "dialect: postgres\nbuffer_size: 100\n")

	t.Setenv("SQLSUBSTR_DIALECT", "mysql")
	t.Setenv("SQLSUBSTR_BUFFER_SIZE", "200")

	flags := testFlags()
	require.NoError(t, flags.Set("dialect", "sqlserver"))
	require.NoError(t, flags.Set("buffer-size", "300"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "sqlserver", cfg.Dialect, "flag value should override config file and env var")
	assert.Equal(t, 300, cfg.BufferSize)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "dialect: postgres\nbuffer_size: 100\n")

	t.Setenv("SQLSUBSTR_DIALECT", "mysql")
	t.Setenv("SQLSUBSTR_BUFFER_SIZE", "200")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Dialect, "env var should override config file")
	assert.Equal(t, 200, cfg.BufferSize)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "dialect: postgres\n")

	t.Setenv("SQLSUBSTR_DIALECT", "mysql")

	cfg, err := LoadConfig(cfgPath, testFlags())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Dialect, "env var should be used when flag is not set")
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
}

func TestLoadConfig_InlineAndFileDialects(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(`
dialects:
  - name: hive
    function: substr
`), 0600))
	cfgPath := writeConfig(t, dir, `
dialect: spark
dialects_file: rules.yaml
dialects:
  - name: spark
    function: substring
    allow_negative_start: true
    start_shift: -1
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rules.yaml"), cfg.DialectsFile)

	all, err := cfg.AllDialects()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "hive", all[0].Name)
	assert.Equal(t, "spark", all[1].Name)
	assert.Equal(t, int64(-1), all[1].StartShift)
	assert.True(t, all[1].AllowNegativeStart)
	assert.Equal(t, "custom dialect", all[1].Description)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"zero buffer", "buffer_size: 0\n", "buffer_size must be positive"},
		{"zero concurrency", "concurrency: 0\n", "concurrency must be positive"},
		{"bad output", "output: html\n", "unknown output format"},
		{"bad log level", "log_level: chatty\n", "unknown log level"},
		{"bad inline dialect", "dialects:\n  - name: x\n", "function name is required"},
		{"malformed yaml", "dialect: [oracle\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			cfgPath := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadConfig(cfgPath, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	for _, mode := range OutputModes {
		cfg.OutputFormat = mode
		assert.NoError(t, cfg.Validate(), mode)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Default()
	cfg.LogLevel = "warn"
	logger := NewLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	cfg.Verbose = true
	NewLogger(cfg, &buf).Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	var buf bytes.Buffer
	logger := NewLogger(Default(), &buf)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
