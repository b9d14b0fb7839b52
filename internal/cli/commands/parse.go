package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsubstr/internal/cli/output"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// parseOutput is the normalized record of a parsed call.
type parseOutput struct {
	Input     string `json:"input" yaml:"input"`
	Function  string `json:"function" yaml:"function"`
	Argument  string `json:"argument" yaml:"argument"`
	Literal   bool   `json:"literal" yaml:"literal"`
	Start     int64  `json:"start" yaml:"start"`
	Length    int64  `json:"length" yaml:"length"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <call>",
		Short: "Show how a SUBSTR call is parsed",
		Long: `Parse a SUBSTR call without translating it and show the normalized record:
function name, first argument, start position and length.

A zero or negative length means "to the end of the string" and is shown as 0.`,
		Example: `  sqlsubstr parse 'SUBSTR(col_name, -1, 5)'
  sqlsubstr parse 'SUBSTR("a, b", 2)' --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
}

func runParse(cmd *cobra.Command, input string) error {
	cmdCtx := NewCommandContextWithoutDialect(cmd)
	r := cmdCtx.Renderer

	rec, err := substr.Parse(input)
	if err != nil {
		cmdCtx.Logger.Debug("parse failed", "input", input, "err", err)
		return NewDiagnosticError(err)
	}

	canonical, err := substr.Render(rec, substr.RequiredLen(rec)+1)
	if err != nil {
		return err
	}
	out := parseOutput{
		Input:     input,
		Function:  rec.FuncName,
		Argument:  rec.Argument,
		Literal:   rec.IsLiteral(),
		Start:     rec.Start,
		Length:    rec.Length,
		Canonical: canonical,
		Bytes:     substr.RequiredLen(rec),
	}

	if ok, err := r.Structured(out); ok {
		return err
	}

	length := "to end of string"
	if rec.HasLength() {
		length = strconv.FormatInt(rec.Length, 10)
	}
	kind := "column"
	if out.Literal {
		kind = "string literal"
	}

	r.Header(1, "Parsed call")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("")
	}
	r.KeyValue("Function", out.Function)
	r.KeyValue("Argument", fmt.Sprintf("%s (%s)", out.Argument, kind))
	r.KeyValue("Start", strconv.FormatInt(out.Start, 10))
	r.KeyValue("Length", length)
	r.KeyValue("Canonical", r.Code(out.Canonical))
	return nil
}
