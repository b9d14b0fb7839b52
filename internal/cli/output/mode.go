// Package output renders CLI results for terminals, pipes and machines.
//
// The effective mode is chosen once per command: styled text on a TTY,
// markdown when piped, or an explicit json/yaml/markdown/text override.
package output

import "strings"

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Mode parses a configured output format. Unknown or empty values map to ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText
	case ModeMarkdown, "md":
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	case ModeYAML, "yml":
		return ModeYAML
	default:
		return ModeAuto
	}
}

// IsStructured reports whether the mode emits machine-readable documents.
func (m OutputMode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
