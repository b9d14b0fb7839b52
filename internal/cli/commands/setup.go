package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/internal/batch"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/config"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/output"
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the configured dialect resolved.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutDialect(cmd)

	d, err := dialect.Lookup(cmdCtx.Cfg.Dialect)
	if err != nil {
		return nil, err
	}
	cmdCtx.Dialect = d
	return cmdCtx, nil
}

// NewCommandContextWithoutDialect creates a CommandContext without resolving a dialect.
// Useful for commands that only inspect calls or the registry.
func NewCommandContextWithoutDialect(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Translator returns a batch translator for the context's dialect.
func (c *CommandContext) Translator() *batch.Translator {
	return &batch.Translator{
		Rule:        &c.Dialect.Rule,
		BufferSize:  c.Cfg.BufferSize,
		Concurrency: c.Cfg.Concurrency,
		Logger:      c.Logger.With("dialect", c.Dialect.Name),
	}
}

// getConfig returns the current configuration, or defaults when the
// command runs without the root command's pre-run.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
