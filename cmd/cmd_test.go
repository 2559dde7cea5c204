package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/glossary-formatter/internal/presets"
	"github.com/ginjaninja78/glossary-formatter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree in a scratch working directory and
// returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMarkdownCommand(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	out, _, err := runCLI(t, "markdown", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Glossary\n\n## Tempo\n\n* **Allegro** - Fast\n"), out)
	assert.Contains(t, out, "### Other\n\n* **Fermata** - Hold\n")
}

func TestMinimalCommand(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	out, _, err := runCLI(t, "minimal", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "GLOSSARY\n========\n\nTempo\n\nAllegro - Fast\n"), out)
	assert.NotContains(t, out, "Piece")
}

func TestLatexCommandWithReferenceFlags(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	out, _, err := runCLI(t, "latex", "--ref-col", "Piece 2", path)
	require.NoError(t, err)

	assert.Contains(t, out, "\\textsuperscript{1} Piece 2\n")
	assert.NotContains(t, out, "\\\\[3pt]")
	assert.Contains(t, out, "\\term{Forte}\\definition{Loud}\\refs{1}\n")
	assert.Contains(t, out, "\\term{Allegro}\\definition{Fast}\n")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}

func TestFileArgumentIsRequired(t *testing.T) {
	for _, name := range presets.Names() {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, name)
			require.EqualError(t, err, "please supply the name of the glossary xlsx file")

			_, _, err = runCLI(t, name, "a.xlsx", "b.xlsx")
			require.EqualError(t, err, "please supply the name of the glossary xlsx file as a single argument")
		})
	}
}

func TestRenderCommand(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	t.Run("named preset", func(t *testing.T) {
		out, _, err := runCLI(t, "render", "--preset", "md", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# Glossary\n"))
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, _, err := runCLI(t, "render", "--preset", "html", path)
		require.ErrorIs(t, err, presets.ErrUnknownPreset)
	})

	t.Run("template", func(t *testing.T) {
		tmpl := filepath.Join(t.TempDir(), "html.yaml")
		doc := `name: html
header: "<h1>Glossary</h1>"
cat_prefix: "<h2>"
cat_suffix: "</h2>"
subcat_prefix: "<h3>"
subcat_suffix: "</h3>"
begin_terms: "<dl>"
end_terms: "</dl>"
term_prefix: "<dt>"
term_suffix: "</dt>"
def_prefix: "<dd>"
def_suffix: "</dd>"
`
		require.NoError(t, os.WriteFile(tmpl, []byte(doc), 0o644))

		out, _, err := runCLI(t, "render", "--template", tmpl, path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<h1>Glossary</h1>\n<h2>Tempo</h2>\n<dl>\n<dt>Allegro</dt><dd>Fast</dd>\n"), out)
		assert.Contains(t, out, "</dl>\n<h3>Other</h3>\n<dl>\n")
	})
}

func TestOutputFlagWritesFile(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())
	pattern := filepath.Join(t.TempDir(), "{original}")

	out, errOut, err := runCLI(t, "markdown", "-o", pattern, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	written := filepath.Join(filepath.Dir(pattern), "glossary.md")
	assert.Contains(t, errOut, "Wrote "+written+" (6 terms)")

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Glossary\n"))
}

func TestConfigFile(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Terms", [][]string{
		{"Word", "Meaning", "Category", "Skip"},
		{"Largo", "Broad", "Tempo", ""},
		{"Lento", "Slow", "Tempo", "x"},
		{"Forte", "Loud", "Dynamics", ""},
	})

	cfgPath := filepath.Join(t.TempDir(), "layout.yaml")
	doc := `sheet: Terms
columns:
  term: Word
  definition: Meaning
  sub_category: ""
omit:
  column: Skip
  indicator: x
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))

	t.Run("no sub-category column", func(t *testing.T) {
		out, _, err := runCLI(t, "--config", cfgPath, "minimal", path)
		require.NoError(t, err)
		assert.Equal(t, "GLOSSARY\n========\n\nTempo\n\nLargo - Broad\n\nDynamics\n\nForte - Loud\n\n", out)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		out, _, err := runCLI(t, "--config", cfgPath, "minimal", "--sub-category-col", "Category", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "GLOSSARY\n========\n\nTempo\n\nTempo\n\nLargo - Broad\n"), out)
	})
}

func TestLoadErrorsAreReported(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	_, _, err := runCLI(t, "minimal", "--sheet", "Missing", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Missing"`)
}

func TestInspectCommand(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", [][]string{
		{"Term", "Definition", "Category", "Sub-category", "Piece 1", "Piece 2"},
		{"Allegro", "Fast", "Tempo", "", "Y", ""},
		{"Forte", "Loud", "Dynamics", "Volume", "Y", "Y"},
		{"Adagio", "Slow", "Tempo", "", "", ""},
	})

	out, _, err := runCLI(t, "inspect", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Glossary workbook")
	assert.Contains(t, out, "Tempo")
	assert.Contains(t, out, "Piece 1")
	assert.Contains(t, out, `category "Tempo" appears in 2 separate runs`)
}

func TestInspectHasNoOutputFlag(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Sheet1", testutil.SampleGlossary())

	_, _, err := runCLI(t, "inspect", "--output", "summary.txt", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --output")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Glossary Formatter")
	assert.Contains(t, out, "Version:    "+Version)
}
