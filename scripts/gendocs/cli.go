package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/sqlsubstr/internal/cli"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/commands"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/config"
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
)

// sampleCall is translated with every registered dialect on the translate page.
const sampleCall = "SUBSTR(col_name, -3, 5)"

var outputModeNotes = map[string]string{
	"auto":     "Text on a terminal, markdown when piped",
	"text":     "One translated call per line, failures on stderr",
	"markdown": "Summary and a result table",
	"json":     "The full run as JSON, including run ID and diagnostics",
	"yaml":     "The full run as YAML",
}

// commandSections adds domain sections to individual command pages.
var commandSections = map[string]func(*MarkdownWriter){
	"translate": writeDialectResults,
	"repl":      writeREPLCommands,
	"dialects":  writeDialectSelection,
}

// generateCLIDocs writes index.md plus one page per visible command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	cmds := visibleCommands(root)

	if err := writePage(outDir, "index.md", cliIndex(root, cmds)); err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd, cmds)); err != nil {
			return err
		}
	}
	return nil
}

func writePage(dir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(dir, name), w.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	log.Printf("  Generated %s", name)
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func commandLink(cmd *cobra.Command) string {
	return fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
}

func cliIndex(root *cobra.Command, cmds []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for sqlsubstr")
	w.GeneratedMarker()

	w.Header(1, "sqlsubstr")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/sqlsubstr/cmd/sqlsubstr@latest\nsqlsubstr translate '"+sampleCall+"'")

	w.Header(2, "Commands")
	rows := make([][]string, 0, len(cmds))
	for _, cmd := range cmds {
		rows = append(rows, []string{commandLink(cmd), cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Input")
	w.BulletList([]string{
		"Calls given as arguments are translated in order.",
		"`--file path` reads one call per line; `--file -` reads stdin.",
		"Without arguments or `--file`, calls are read from stdin.",
		"Blank lines and lines starting with `--` are skipped.",
	})

	w.Header(2, "Output modes")
	modeRows := make([][]string, 0, len(config.OutputModes))
	for _, mode := range config.OutputModes {
		modeRows = append(modeRows, []string{InlineCode(mode), outputModeNotes[mode]})
	}
	w.Table([]string{"Mode", "Result"}, modeRows)

	w.Header(2, "Global options")
	writeFlagsTable(w, root.PersistentFlags())
	w.Paragraph("Flags override `SQLSUBSTR_*` environment variables, which override sqlsubstr.yaml.")

	w.Header(2, "Exit codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Every call translated"},
		{InlineCode("1"), "Invalid configuration or usage, or at least one call failed (diagnostics on stderr)"},
	})
	return w
}

func commandPage(cmd *cobra.Command, siblings []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	useLine := cmd.UseLine()
	if !strings.HasPrefix(useLine, "sqlsubstr") {
		useLine = "sqlsubstr " + useLine
	}
	w.CodeBlock("bash", useLine)

	if len(cmd.Aliases) > 0 {
		aliases := make([]string, 0, len(cmd.Aliases))
		for _, alias := range cmd.Aliases {
			aliases = append(aliases, InlineCode(alias))
		}
		w.Paragraph("Aliases: " + strings.Join(aliases, ", "))
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	if section, ok := commandSections[cmd.Name()]; ok {
		section(w)
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	var related []string
	for _, s := range siblings {
		if s != cmd {
			related = append(related, commandLink(s))
		}
	}
	if len(related) > 0 {
		w.Header(2, "See also")
		w.Paragraph(strings.Join(related, " · ") + " · [global options](/cli/)")
	}
	return w
}

// writeDialectResults translates sampleCall with every dialect.
func writeDialectResults(w *MarkdownWriter) {
	w.Header(2, "Results by dialect")
	w.Paragraph("`sqlsubstr translate -d <dialect> '" + sampleCall + "'` gives:")

	buf := make([]byte, config.DefaultBufferSize)
	rows := make([][]string, 0)
	for _, d := range dialect.All() {
		var result string
		n, err := dialect.TranslateCall(sampleCall, d.Name, buf)
		if err != nil {
			result = commands.Diagnose(err).Title
		} else {
			result = InlineCode(string(buf[:n]))
		}
		rows = append(rows, []string{InlineCode(d.Name), result})
	}
	w.Table([]string{"Dialect", "Result"}, rows)
}

func writeREPLCommands(w *MarkdownWriter) {
	w.Header(2, "Session commands")
	rows := make([][]string, 0, len(commands.REPLCommands))
	for _, c := range commands.REPLCommands {
		rows = append(rows, []string{InlineCode(c.Usage), c.Help})
	}
	w.Table([]string{"Command", "Description"}, rows)
	w.Paragraph("Any other line is translated with the current dialect. Tab completes commands and dialect names.")
}

func writeDialectSelection(w *MarkdownWriter) {
	w.Header(2, "Selecting a dialect")
	names := make([]string, 0)
	for _, name := range dialect.List() {
		names = append(names, InlineCode(name))
	}
	w.Paragraph("Pass one of " + strings.Join(names, ", ") + " to `--dialect`, or set `dialect:` in sqlsubstr.yaml. " +
		"Custom dialects from the configuration are listed too; see [dialects](/reference/dialects).")
}

// writeFlagsTable lists flags with the environment variable that sets the
// same configuration key, when there is one. Flags without their own default
// show the configuration default.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	fieldByFlag := make(map[string]ConfigField)
	for _, f := range configSchema() {
		if f.Flag != "" {
			fieldByFlag[f.Flag] = f
		}
	}

	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		option := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			option += ", " + InlineCode("-"+f.Shorthand)
		}
		field := fieldByFlag["--"+f.Name]
		def := f.DefValue
		if def == "" {
			def = field.Default
		}
		if def != "" && f.Value.Type() != "bool" {
			def = InlineCode(def)
		}
		env := field.Env
		if env != "" {
			env = InlineCode(env)
		}
		rows = append(rows, []string{option, def, env, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Default", "Environment", "Description"}, rows)
}

// dedent strips the indentation shared by all non-blank lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, line := range lines {
			if len(line) >= indent {
				lines[i] = line[indent:]
			} else {
				lines[i] = strings.TrimLeft(line, " \t")
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
