package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// Diagnostic is the user-facing description of a failed translation.
type Diagnostic struct {
	Kind    string `json:"kind" yaml:"kind"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

type kindText struct {
	message string
	hint    string
}

var kindTexts = map[substr.Kind]kindText{
	substr.KindNullInput: {
		message: "nothing to translate",
		hint:    "pass a SUBSTR call and make sure a dialect is selected",
	},
	substr.KindAllocationFailure: {
		message: "out of memory while translating",
		hint:    "retry with fewer calls per batch",
	},
	substr.KindParensMismatch: {
		message: "parentheses are missing or out of order",
		hint:    "write the call as SUBSTR(column, start[, length])",
	},
	substr.KindQuoteMismatch: {
		message: "string literal is not closed",
		hint:    "close the literal with a matching double quote",
	},
	substr.KindWrongColumnName: {
		message: "first argument is not a column name or string literal",
		hint:    "separate the first argument from the start position with a comma",
	},
	substr.KindWrongStartPosition: {
		message: "start position is missing or not an integer",
		hint:    "use a whole number such as 1 or -3 as the second argument",
	},
	substr.KindWrongLength: {
		message: "length is not an integer",
		hint:    "use a whole number as the third argument or leave it out",
	},
	substr.KindNegativeStartNotAllowed: {
		message: "the target dialect does not accept a negative start position",
		hint:    "pick a dialect that counts from the end (oracle, sqlserver) or rewrite the start",
	},
	substr.KindOutputBufferTooShort: {
		message: "translated call does not fit the output buffer",
		hint:    "raise --buffer-size",
	},
}

var titleCaser = cases.Title(language.English)

// kindTitle turns a snake_case kind name into a heading, e.g. "Quote Mismatch".
func kindTitle(k substr.Kind) string {
	return titleCaser.String(strings.ReplaceAll(k.String(), "_", " "))
}

// Diagnose maps an error from a translation to a Diagnostic.
func Diagnose(err error) Diagnostic {
	if err == nil {
		return Diagnostic{}
	}

	switch {
	case errors.Is(err, dialect.ErrUnknownDialect):
		return Diagnostic{
			Kind:    "unknown_dialect",
			Title:   "Unknown Dialect",
			Message: err.Error(),
			Hint:    "run `sqlsubstr dialects` to see registered dialects",
		}
	case errors.Is(err, dialect.ErrDialectRequired):
		return Diagnostic{
			Kind:    "dialect_required",
			Title:   "Dialect Required",
			Message: err.Error(),
			Hint:    "set --dialect or `dialect:` in sqlsubstr.yaml",
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Diagnostic{
			Kind:    "cancelled",
			Title:   "Cancelled",
			Message: err.Error(),
		}
	}

	kind := substr.KindOf(err)
	text, ok := kindTexts[kind]
	if !ok {
		return Diagnostic{
			Kind:    kind.String(),
			Title:   kindTitle(kind),
			Message: err.Error(),
		}
	}

	d := Diagnostic{
		Kind:    kind.String(),
		Title:   kindTitle(kind),
		Message: text.message,
		Hint:    text.hint,
	}
	var se *substr.Error
	if errors.As(err, &se) {
		d.Detail = se.Msg
	}
	return d
}

// Summary is the title, message and detail on one line.
func (d Diagnostic) Summary() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Detail != "" {
		b.WriteString(" (")
		b.WriteString(d.Detail)
		b.WriteString(")")
	}
	return b.String()
}

// String formats the diagnostic for plain text output.
func (d Diagnostic) String() string {
	if d.Hint == "" {
		return d.Summary()
	}
	return d.Summary() + "\nHint: " + d.Hint
}

// DiagnosticError wraps a translation error with its diagnostic text.
type DiagnosticError struct {
	Diagnostic Diagnostic
	Err        error
}

// NewDiagnosticError diagnoses err. It returns nil for a nil err.
func NewDiagnosticError(err error) error {
	if err == nil {
		return nil
	}
	return &DiagnosticError{Diagnostic: Diagnose(err), Err: err}
}

func (e *DiagnosticError) Error() string { return e.Diagnostic.String() }

func (e *DiagnosticError) Unwrap() error { return e.Err }
