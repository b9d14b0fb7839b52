package substr

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindNullInput means a required input (rule, record or buffer) was absent.
	KindNullInput
	// KindAllocationFailure means memory for a stage result could not be obtained.
	KindAllocationFailure
	// KindParensMismatch means parentheses are missing or misordered.
	KindParensMismatch
	// KindQuoteMismatch means the literal argument has unbalanced quotes.
	KindQuoteMismatch
	// KindWrongColumnName means the argument token or its delimiting comma is invalid.
	KindWrongColumnName
	// KindWrongStartPosition means the start position is missing or not an integer.
	KindWrongStartPosition
	// KindWrongLength means the length is present but not an integer.
	KindWrongLength
	// KindNegativeStartNotAllowed means the target dialect forbids negative starts.
	KindNegativeStartNotAllowed
	// KindOutputBufferTooShort means the output buffer cannot hold the rendered call.
	KindOutputBufferTooShort
)

var kindNames = map[Kind]string{
	KindUnknown:                 "unknown",
	KindNullInput:               "null_input",
	KindAllocationFailure:       "allocation_failure",
	KindParensMismatch:          "parens_mismatch",
	KindQuoteMismatch:           "quote_mismatch",
	KindWrongColumnName:         "wrong_column_name",
	KindWrongStartPosition:      "wrong_start_position",
	KindWrongLength:             "wrong_length",
	KindNegativeStartNotAllowed: "negative_start_not_allowed",
	KindOutputBufferTooShort:    "output_buffer_too_short",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every kind a pipeline stage can report, in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindNullInput,
		KindAllocationFailure,
		KindParensMismatch,
		KindQuoteMismatch,
		KindWrongColumnName,
		KindWrongStartPosition,
		KindWrongLength,
		KindNegativeStartNotAllowed,
		KindOutputBufferTooShort,
	}
}

// Error is the error type returned by every stage of the pipeline.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error of the same kind.
// This lets callers match against the Err* sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching. Returned errors carry more detail in Msg.
var (
	ErrNullInput               = &Error{Kind: KindNullInput}
	ErrAllocationFailure       = &Error{Kind: KindAllocationFailure}
	ErrParensMismatch          = &Error{Kind: KindParensMismatch}
	ErrQuoteMismatch           = &Error{Kind: KindQuoteMismatch}
	ErrWrongColumnName         = &Error{Kind: KindWrongColumnName}
	ErrWrongStartPosition      = &Error{Kind: KindWrongStartPosition}
	ErrWrongLength             = &Error{Kind: KindWrongLength}
	ErrNegativeStartNotAllowed = &Error{Kind: KindNegativeStartNotAllowed}
	ErrOutputBufferTooShort    = &Error{Kind: KindOutputBufferTooShort}
)

// KindOf returns the kind of err, or KindUnknown if err is nil or foreign.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
