package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/sqlsubstr/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Env         string
	Flag        string
	Description string
}

// configSchema returns the configuration reference.
// It follows internal/cli/config/types.go.
func configSchema() []ConfigField {
	return []ConfigField{
		{Name: "dialect", Type: "string", Default: config.DefaultDialect, Env: "SQLSUBSTR_DIALECT", Flag: "--dialect", Description: "Target dialect name"},
		{Name: "buffer_size", Type: "int", Default: strconv.Itoa(config.DefaultBufferSize), Env: "SQLSUBSTR_BUFFER_SIZE", Flag: "--buffer-size", Description: "Output buffer capacity in bytes per call"},
		{Name: "concurrency", Type: "int", Default: strconv.Itoa(config.DefaultConcurrency), Env: "SQLSUBSTR_CONCURRENCY", Flag: "--concurrency", Description: "Calls translated in parallel"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Env: "SQLSUBSTR_OUTPUT", Flag: "--output", Description: "Output format: auto, text, markdown, json, yaml"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Env: "SQLSUBSTR_LOG_LEVEL", Flag: "--log-level", Description: "Log level: debug, info, warn, error"},
		{Name: "verbose", Type: "bool", Default: "false", Env: "SQLSUBSTR_VERBOSE", Flag: "--verbose", Description: "Debug logging"},
		{Name: "dialects_file", Type: "string", Env: "SQLSUBSTR_DIALECTS_FILE", Flag: "--dialects-file", Description: "YAML file with additional custom dialects"},
		{Name: "dialects", Type: "list", Description: "Inline custom dialects (see below)"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "sqlsubstr configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("sqlsubstr reads `sqlsubstr.yaml` (or `sqlsubstr.yml`) from the current directory or the nearest parent, or the file given with `--config`.")

	w.Header(2, "Settings")
	var rows [][]string
	for _, f := range configSchema() {
		def := f.Default
		if def != "" {
			def = InlineCode(def)
		}
		flag := f.Flag
		if flag != "" {
			flag = InlineCode(flag)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, def, flag, f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Flag", "Description"}, rows)

	w.Header(2, "Custom dialects")
	w.Paragraph("Each entry under `dialects:` registers a dialect by name. A custom dialect replaces a built-in one with the same name.")
	w.Table([]string{"Key", "Type", "Description"}, [][]string{
		{InlineCode("name"), "string", "Dialect name used with `--dialect`"},
		{InlineCode("function"), "string", "Substring function emitted in translated calls"},
		{InlineCode("allow_negative_start"), "bool", "Accept negative start positions"},
		{InlineCode("start_shift"), "int", "Added to every start position (e.g. `-1` for 0-based engines)"},
		{InlineCode("description"), "string", "Shown by `sqlsubstr dialects`"},
	})
	w.CodeBlock("yaml", `dialect: spark
buffer_size: 2048
dialects:
  - name: spark
    function: substring
    allow_negative_start: true
    start_shift: 0`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
