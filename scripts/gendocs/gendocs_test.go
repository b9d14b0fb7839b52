package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Options")
	w.Table([]string{"Flag", "Description"}, [][]string{{InlineCode("--output"), "auto|text"}})

	assert.Equal(t, "## Options\n\n| Flag | Description |\n| --- | --- |\n| `--output` | auto\\|text |\n\n", string(w.Bytes()))
}

func TestDedent(t *testing.T) {
	in := "  # one\n  sqlsubstr translate 'SUBSTR(a, 1)'\n\n    indented"
	assert.Equal(t, "# one\nsqlsubstr translate 'SUBSTR(a, 1)'\n\n  indented", dedent(in))
}

func TestGenerateDocs(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, generateCLIDocs(filepath.Join(dir, "cli")))
	require.NoError(t, generateConfigDocs(filepath.Join(dir, "reference")))
	require.NoError(t, generateDialectDocs(filepath.Join(dir, "reference")))

	for _, name := range []string{"cli/index.md", "cli/translate.md", "cli/dialects.md", "reference/configuration.md", "reference/dialects.md", "reference/errors.md"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.Contains(string(data), generatedHeader), name)
	}

	translate, err := os.ReadFile(filepath.Join(dir, "cli", "translate.md"))
	require.NoError(t, err)
	assert.Contains(t, string(translate), "| `oracle` | `substr(col_name, -3, 5)` |")
	assert.Contains(t, string(translate), "| `sqlite` | Negative Start Not Allowed |")

	repl, err := os.ReadFile(filepath.Join(dir, "cli", "repl.md"))
	require.NoError(t, err)
	assert.Contains(t, string(repl), "`.dialect [name]`")

	index, err := os.ReadFile(filepath.Join(dir, "cli", "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "| `--dialect`, `-d` | `oracle` | `SQLSUBSTR_DIALECT` |")
	assert.Contains(t, string(index), "| `markdown` | Summary and a result table |")

	dialects, err := os.ReadFile(filepath.Join(dir, "reference", "dialects.md"))
	require.NoError(t, err)
	assert.Contains(t, string(dialects), "`sqlserver`")

	errs, err := os.ReadFile(filepath.Join(dir, "reference", "errors.md"))
	require.NoError(t, err)
	assert.Contains(t, string(errs), "`output_buffer_too_short`")
}
