// Package substr parses substring function calls and re-emits them for another SQL dialect.
//
// The pipeline has three stages, each usable on its own:
//
//	Parse      "SUBSTR(col, -1, 5)"      -> CallRecord
//	Translate  CallRecord + Rule         -> CallRecord
//	RenderTo   CallRecord + []byte       -> "substr(col, -1, 5)"
//
// TranslateCall composes them and returns the first stage error unchanged.
// Every function is synchronous and keeps no state between calls.
package substr

// CallRecord is the dialect-agnostic form of a substring call.
type CallRecord struct {
	// FuncName is the source function name after parsing and the
	// target function name after translation.
	FuncName string
	// Argument is a bare column token or a quoted literal, quotes included.
	Argument string
	Start    int64
	// Length is 0 when the call did not specify one.
	Length int64
}

// HasLength reports whether the record carries an explicit length.
func (r *CallRecord) HasLength() bool {
	return r.Length > 0
}

// IsLiteral reports whether the argument is a quoted string literal.
func (r *CallRecord) IsLiteral() bool {
	n := len(r.Argument)
	return n >= 2 && r.Argument[0] == quote && r.Argument[n-1] == quote
}

// Rule describes how a target dialect spells and indexes its substring function.
type Rule struct {
	FunctionName       string
	AllowNegativeStart bool
	// StartShift is added to the start position to move between 0- and 1-based indexing.
	StartShift int64
}
