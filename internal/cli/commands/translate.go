package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/internal/batch"
	"github.com/leapstack-labs/sqlsubstr/internal/cli/output"
)

// TranslateOptions holds options for the translate command.
type TranslateOptions struct {
	File string
}

// translateItem is one translated call in structured output.
type translateItem struct {
	Index  int         `json:"index" yaml:"index"`
	Input  string      `json:"input" yaml:"input"`
	Output string      `json:"output,omitempty" yaml:"output,omitempty"`
	Error  *Diagnostic `json:"error,omitempty" yaml:"error,omitempty"`
}

// translateOutput is the structured result of a translate run.
type translateOutput struct {
	RunID    string          `json:"run_id" yaml:"run_id"`
	Dialect  string          `json:"dialect" yaml:"dialect"`
	Function string          `json:"function" yaml:"function"`
	Total    int             `json:"total" yaml:"total"`
	Failed   int             `json:"failed" yaml:"failed"`
	Results  []translateItem `json:"results" yaml:"results"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	opts := &TranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [call...]",
		Short: "Translate SUBSTR calls into a target dialect",
		Long: `Translate SUBSTR calls into the selected dialect's substring syntax.

Calls are taken from the arguments, from --file, or from stdin (one per line;
blank lines and lines starting with -- are skipped). Every call is translated
even when some fail; the command exits with an error if any call failed.

Output adapts to environment:
  - Terminal: one translated call per line, diagnostics on stderr
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Translate a single call for Oracle (default dialect)
  sqlsubstr translate 'SUBSTR(col_name, -1, 5)'

  # Translate for SQLite
  sqlsubstr translate -d sqlite 'SUBSTR("abc", 2)'

  # Translate a file of calls as JSON
  sqlsubstr translate --file calls.sql --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read calls from file (- for stdin)")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string, opts *TranslateOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args, opts)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no SUBSTR calls to translate\nHint: pass calls as arguments, use --file, or pipe them on stdin")
	}

	run, runErr := cmdCtx.Translator().Translate(cmd.Context(), inputs)
	if run == nil {
		return runErr
	}

	out := buildTranslateOutput(cmdCtx, run)
	r := cmdCtx.Renderer

	if ok, err := r.Structured(out); ok {
		if err != nil {
			return err
		}
	} else if r.EffectiveMode() == output.ModeMarkdown {
		translateMarkdown(r, out)
	} else {
		translateText(r, out)
	}

	if runErr != nil {
		return runErr
	}
	if out.Failed > 0 {
		return fmt.Errorf("%d of %d calls failed to translate", out.Failed, out.Total)
	}
	return nil
}

// collectInputs picks the call source: arguments, then --file, then stdin.
func collectInputs(cmd *cobra.Command, args []string, opts *TranslateOptions) ([]string, error) {
	if len(args) > 0 {
		if opts.File != "" {
			return nil, fmt.Errorf("cannot combine call arguments with --file")
		}
		return args, nil
	}

	var src io.Reader = cmd.InOrStdin()
	if opts.File != "" && opts.File != "-" {
		f, err := os.Open(opts.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", opts.File, err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}
	return batch.ReadInputs(src)
}

func buildTranslateOutput(cmdCtx *CommandContext, run *batch.Run) *translateOutput {
	out := &translateOutput{
		RunID:    run.ID,
		Dialect:  cmdCtx.Dialect.Name,
		Function: cmdCtx.Dialect.Rule.FunctionName,
		Total:    len(run.Results),
		Failed:   run.Failed,
		Results:  make([]translateItem, 0, len(run.Results)),
	}
	for _, res := range run.Results {
		item := translateItem{Index: res.Index, Input: res.Input, Output: res.Output}
		if res.Err != nil {
			d := Diagnose(res.Err)
			item.Error = &d
		}
		out.Results = append(out.Results, item)
	}
	return out
}

// translateText prints translated calls on stdout and failures on stderr.
func translateText(r *output.Renderer, out *translateOutput) {
	for _, item := range out.Results {
		if item.Error != nil {
			r.Error(fmt.Sprintf("%s\n  %s", item.Input, item.Error.Summary()))
			if item.Error.Hint != "" {
				r.Hint(item.Error.Hint)
			}
			continue
		}
		r.Println(item.Output)
	}
}

func translateMarkdown(r *output.Renderer, out *translateOutput) {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Translation (%s)", out.Dialect)))
	r.Println("")
	r.Println(output.FormatKeyValue("Function", output.FormatInlineCode(out.Function)))
	r.Println(output.FormatKeyValue("Calls", strconv.Itoa(out.Total)))
	r.Println(output.FormatKeyValue("Failed", strconv.Itoa(out.Failed)))
	r.Println("")

	rows := make([][]string, 0, len(out.Results))
	for _, item := range out.Results {
		result := output.FormatInlineCode(item.Output)
		if item.Error != nil {
			result = item.Error.Title + ": " + item.Error.Message
		}
		rows = append(rows, []string{strconv.Itoa(item.Index + 1), output.FormatInlineCode(item.Input), result})
	}
	r.Table([]string{"#", "Input", "Result"}, rows)
}
