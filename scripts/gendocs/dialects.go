package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/sqlsubstr/internal/cli/commands"
	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"

	_ "github.com/leapstack-labs/sqlsubstr/pkg/dialects/all"
)

// generateDialectDocs writes the built-in dialect and error reference pages.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateDialectIndex(outDir); err != nil {
		return fmt.Errorf("failed to generate dialects.md: %w", err)
	}
	log.Printf("  Generated dialects.md")

	if err := generateErrorsPage(outDir); err != nil {
		return fmt.Errorf("failed to generate errors.md: %w", err)
	}
	log.Printf("  Generated errors.md")

	return nil
}

func generateDialectIndex(outDir string) error {
	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "Built-in SUBSTR dialects")
	w.GeneratedMarker()

	w.Header(1, "Dialects")
	w.Paragraph("Every dialect rewrites the function name, may reject negative start positions, and may shift the start position.")

	var rows [][]string
	for _, d := range dialect.All() {
		negative := "no"
		if d.Rule.AllowNegativeStart {
			negative = "yes"
		}
		rows = append(rows, []string{
			InlineCode(d.Name),
			strconv.Itoa(int(d.ID)),
			InlineCode(d.Rule.FunctionName),
			negative,
			d.IndexBase(),
			d.Description,
		})
	}
	w.Table([]string{"Name", "ID", "Function", "Negative start", "Index", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("bash", `$ sqlsubstr translate -d sqlserver 'SUBSTR(col_name, 2, 3)'
substring(col_name, 2, 3)`)

	return os.WriteFile(filepath.Join(outDir, "dialects.md"), w.Bytes(), 0600)
}

func generateErrorsPage(outDir string) error {
	w := NewMarkdownWriter()
	w.Frontmatter("Errors", "Translation error kinds")
	w.GeneratedMarker()

	w.Header(1, "Errors")
	w.Paragraph("A failed translation reports one of these kinds. JSON and YAML output carry the kind in `error.kind`.")

	var rows [][]string
	for _, k := range substr.Kinds() {
		d := commands.Diagnose(&substr.Error{Kind: k})
		rows = append(rows, []string{InlineCode(d.Kind), d.Title, d.Message, d.Hint})
	}
	w.Table([]string{"Kind", "Title", "Meaning", "Hint"}, rows)

	return os.WriteFile(filepath.Join(outDir, "errors.md"), w.Bytes(), 0600)
}
