package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate SUBSTR calls interactively",
		Long: `Start an interactive session that translates each entered SUBSTR call
with the current dialect. Type .help for commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

// replSession holds the state of one interactive session.
type replSession struct {
	dialect    *dialect.Dialect
	bufferSize int
	out        io.Writer
	errOut     io.Writer
	setPrompt  func(string)
}

func (s *replSession) prompt() string {
	return fmt.Sprintf("sqlsubstr(%s)> ", s.dialect.Name)
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	s := &replSession{
		dialect:    cmdCtx.Dialect,
		bufferSize: cmdCtx.Cfg.BufferSize,
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     historyFile(),
		AutoComplete:    newDialectCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          s.out,
		Stderr:          s.errOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()
	s.setPrompt = rl.SetPrompt

	cmdCtx.Logger.Debug("repl started", "dialect", s.dialect.Name)
	_, _ = fmt.Fprintf(s.out, "sqlsubstr REPL (dialect: %s)\n", s.dialect.Name)
	_, _ = fmt.Fprintln(s.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			break
		}
		if s.eval(line) {
			break
		}
	}
	return nil
}

// historyFile returns the REPL history path, or "" when no cache dir is available.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "sqlsubstr")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "--") {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}

	dst := make([]byte, s.bufferSize)
	n, err := substr.TranslateCall(line, &s.dialect.Rule, dst)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %s\n", Diagnose(err).String())
		return false
	}
	_, _ = fmt.Fprintln(s.out, string(dst[:n]))
	return false
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "%s (%s, negative start allowed: %t)\n",
				s.dialect.Name, s.dialect.Rule.FunctionName, s.dialect.Rule.AllowNegativeStart)
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.dialect = d
		if s.setPrompt != nil {
			s.setPrompt(s.prompt())
		}
		_, _ = fmt.Fprintf(s.out, "Dialect set to %s\n", d.Name)

	case ".dialects":
		for _, d := range dialect.All() {
			marker := " "
			if d.Name == s.dialect.Name {
				marker = "*"
			}
			_, _ = fmt.Fprintf(s.out, "%s %-12s %s\n", marker, d.Name, d.Rule.FunctionName)
		}

	case ".parse":
		call := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
		rec, err := substr.Parse(call)
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %s\n", Diagnose(err).String())
			return false
		}
		_, _ = fmt.Fprintf(s.out, "function=%s argument=%s start=%d length=%d\n",
			rec.FuncName, rec.Argument, rec.Start, rec.Length)

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

// REPLCommand describes one dot-command of the interactive session.
type REPLCommand struct {
	Name  string
	Usage string
	Help  string
}

// REPLCommands lists the dot-commands understood by the repl command.
var REPLCommands = []REPLCommand{
	{Name: ".help", Usage: ".help", Help: "Show this help message"},
	{Name: ".dialect", Usage: ".dialect [name]", Help: "Show or switch the target dialect"},
	{Name: ".dialects", Usage: ".dialects", Help: "List registered dialects"},
	{Name: ".parse", Usage: ".parse <call>", Help: "Show the parsed record of a call"},
	{Name: ".quit", Usage: ".quit", Help: "Exit the REPL"},
	{Name: ".exit", Usage: ".exit", Help: "Exit the REPL"},
}

func printREPLHelp(w io.Writer) {
	var b strings.Builder
	b.WriteString("\nCommands:\n")
	for _, c := range REPLCommands {
		fmt.Fprintf(&b, "  %-16s %s\n", c.Usage, c.Help)
	}
	b.WriteString("\nAnything else is translated as a SUBSTR call, e.g. SUBSTR(col_name, 1, 5)\n")
	_, _ = fmt.Fprintln(w, b.String())
}

// newDialectCompleter completes dot-commands and dialect names.
func newDialectCompleter() *readline.PrefixCompleter {
	names := make([]readline.PrefixCompleterInterface, 0)
	for _, name := range dialect.List() {
		names = append(names, readline.PcItem(name))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(REPLCommands))
	for _, c := range REPLCommands {
		if c.Name == ".dialect" {
			items = append(items, readline.PcItem(c.Name, names...))
			continue
		}
		items = append(items, readline.PcItem(c.Name))
	}
	return readline.NewPrefixCompleter(items...)
}
