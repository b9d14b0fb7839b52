package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTest(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{" yaml ", ModeYAML},
		{"yml", ModeYAML},
		{"html", ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), tt.in)
	}
	assert.True(t, ModeJSON.IsStructured())
	assert.False(t, ModeText.IsStructured())
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto tty", ModeAuto, true, ModeText},
		{"auto pipe", ModeAuto, false, ModeMarkdown},
		{"empty pipe", "", false, ModeMarkdown},
		{"explicit json on tty", ModeJSON, true, ModeJSON},
		{"explicit text on pipe", ModeText, false, ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTest(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_NoANSIWithoutTTY(t *testing.T) {
	r, out, errOut := newTest(ModeText, false)
	r.Header(1, "Dialects")
	r.Error("failed")
	r.Hint("use oracle")
	r.Muted("* current dialect")
	r.KeyValue("Canonical", r.Code("substr(col, 1)"))

	combined := out.String() + errOut.String()
	assert.NotContains(t, combined, "\x1b[")
	assert.Contains(t, out.String(), "Dialects")
	assert.Contains(t, out.String(), "* current dialect")
	assert.Contains(t, out.String(), "Canonical: substr(col, 1)")
	assert.Contains(t, errOut.String(), "failed")
	assert.Contains(t, errOut.String(), "  Hint: use oracle")
}

func TestRenderer_MarkdownHelpers(t *testing.T) {
	r, out, _ := newTest(ModeMarkdown, false)
	r.Header(2, "Result")
	r.KeyValue("Output", r.Code("substr(col, 1, 2)"))
	r.Muted("note")

	assert.Equal(t, "## Result\n- **Output**: `substr(col, 1, 2)`\n_note_\n", out.String())
	assert.Equal(t, "```sql\nselect 1\n```", FormatCodeBlock("sql", "select 1\n"))
	assert.Equal(t, "# x", FormatHeader(0, "x"))
	assert.Equal(t, "`a`", FormatInlineCode("a"))
}

func TestRenderer_Structured(t *testing.T) {
	type doc struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}

	r, out, _ := newTest(ModeJSON, false)
	ok, err := r.Structured(doc{Name: "oracle", Count: 2})
	require.NoError(t, err)
	require.True(t, ok)
	var gotJSON doc
	require.NoError(t, json.Unmarshal(out.Bytes(), &gotJSON))
	assert.Equal(t, doc{Name: "oracle", Count: 2}, gotJSON)

	r, out, _ = newTest(ModeYAML, false)
	ok, err = r.Structured(doc{Name: "sqlite", Count: 1})
	require.NoError(t, err)
	require.True(t, ok)
	var gotYAML doc
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &gotYAML))
	assert.Equal(t, doc{Name: "sqlite", Count: 1}, gotYAML)

	r, out, _ = newTest(ModeText, true)
	ok, err = r.Structured(doc{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestRenderer_Table(t *testing.T) {
	rows := [][]string{{"oracle", "substr"}, {"mysql", "substring"}}

	r, out, _ := newTest(ModeMarkdown, false)
	r.Table([]string{"Name", "Function"}, rows)
	md := out.String()
	assert.Contains(t, md, "| oracle | substr")
	assert.Contains(t, md, "| mysql | substring")
	assert.Equal(t, 4, strings.Count(strings.TrimSpace(md), "\n")+1, "header, separator and two rows")

	r, out, _ = newTest(ModeText, false)
	r.Table([]string{"Name", "Function"}, rows)
	assert.Contains(t, out.String(), "oracle")
	assert.Contains(t, out.String(), "┌")
}
