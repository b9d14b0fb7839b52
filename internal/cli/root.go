// Package cli provides the command-line interface for sqlsubstr.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/internal/cli/commands"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/config"
	intconfig "github.com/leapstack-labs/sqlsubstr/internal/config"
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"

	// Register built-in dialects via init()
	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/all"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlsubstr",
		Short: "sqlsubstr - SUBSTR dialect translator",
		Long: `sqlsubstr rewrites SQL substring calls such as SUBSTR(col, -3, 5) into the
syntax of a target SQL dialect, checking that the dialect accepts the start position.

Built-in dialects: oracle, sqlserver, postgres, mysql, sqlite, databricks,
duckdb, snowflake. Custom dialects can be defined in sqlsubstr.yaml.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
commit %s, built %s
`, GitCommit, BuildDate))

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: sqlsubstr.yaml in this or a parent directory)")
	flags.StringP("dialect", "d", "", "Target dialect (default: oracle)")
	flags.Int("buffer-size", config.DefaultBufferSize, "Output buffer capacity in bytes per call")
	flags.Int("concurrency", config.DefaultConcurrency, "Calls translated in parallel")
	flags.String("dialects-file", "", "YAML file with additional custom dialects")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml)")
	flags.BoolP("verbose", "v", false, "Verbose output (debug logging)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputModes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTranslateCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// setup loads configuration, registers custom dialects and installs the
// logger in the command context.
func setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	logger := config.NewLogger(cfg, cmd.ErrOrStderr())
	if configFile := config.GetConfigFileUsed(); configFile != "" {
		logger.Debug("using config file", "path", configFile)
	}

	custom, err := cfg.AllDialects()
	if err != nil {
		return err
	}
	if err := intconfig.RegisterDialects(custom); err != nil {
		return err
	}
	for _, d := range custom {
		logger.Debug("registered custom dialect", "name", d.Name, "function", d.Function)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = config.WithLogger(ctx, logger)
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqlsubstr.

To load completions:

Bash:
  $ source <(sqlsubstr completion bash)

Zsh:
  $ sqlsubstr completion zsh > "${fpath[1]}/_sqlsubstr"

Fish:
  $ sqlsubstr completion fish | source

PowerShell:
  PS> sqlsubstr completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
