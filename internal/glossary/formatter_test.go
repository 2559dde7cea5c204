package glossary

import (
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/glossary-formatter/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"Term", "Definition", "Category", "Sub-category", "Piece 1", "Piece 2", "Omit"}

func makeRows(cells ...[]string) []types.Row {
	rows := make([]types.Row, 0, len(cells))
	for i, c := range cells {
		row := types.NewRow(i+2, testHeader)
		for j, name := range testHeader {
			v := ""
			if j < len(c) {
				v = c[j]
			}
			row.Set(name, v)
		}
		rows = append(rows, row)
	}
	return rows
}

func sampleRows() []types.Row {
	return makeRows(
		[]string{"Allegro", "Fast", "Tempo", "", "Y", ""},
		[]string{"Adagio", "Slow", "Tempo", "", "", ""},
		[]string{"Forte", "Loud", "Dynamics", "Volume", "Y", "Y"},
		[]string{"Piano", "Soft", "Dynamics", "Volume", "", "Y"},
		[]string{"Crescendo", "Getting louder", "Dynamics", "Change", "", ""},
		[]string{"Fermata", "Hold", "Dynamics", "", "Y", ""},
	)
}

func TestFormatDefaults(t *testing.T) {
	var buf strings.Builder
	stats, err := Format(&buf, sampleRows(), DefaultOptions())
	require.NoError(t, err)

	want := "Tempo\n\n" +
		"Allegro - Fast\n" +
		"Adagio - Slow\n" +
		"\n" +
		"Dynamics\n\n" +
		"Forte - Loud\n" +
		"Piano - Soft\n" +
		"Crescendo - Getting louder\n" +
		"Fermata - Hold\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Format() output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Stats{Rows: 6, Terms: 6, Categories: 2}, stats)
}

func TestFormatSubCategories(t *testing.T) {
	opts := DefaultOptions()
	opts.SubCategory = "Sub-category"
	opts.CatPrefix = "## "
	opts.SubcatPrefix = "### "
	opts.TermPrefix = "* **"
	opts.TermSuffix = "**"

	var buf strings.Builder
	stats, err := Format(&buf, sampleRows(), opts)
	require.NoError(t, err)

	want := "## Tempo\n\n" +
		"* **Allegro** - Fast\n" +
		"* **Adagio** - Slow\n" +
		"\n" +
		"## Dynamics\n\n" +
		"### Volume\n\n" +
		"* **Forte** - Loud\n" +
		"* **Piano** - Soft\n" +
		"\n" +
		"### Change\n\n" +
		"* **Crescendo** - Getting louder\n" +
		"\n" +
		"### Other\n\n" +
		"* **Fermata** - Hold\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Format() output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 3, stats.SubCategories)
}

func TestFormatBeginEndTermsAndRefs(t *testing.T) {
	opts := DefaultOptions()
	opts.SubCategory = "Sub-category"
	opts.Fragments = Fragments{
		CatPrefix:       "[",
		CatSuffix:       "]",
		SubcatPrefix:    "(",
		SubcatSuffix:    ")",
		EmptySubcatName: "Misc",
		BeginTerms:      "<ul>",
		EndTerms:        "</ul>",
		TermPrefix:      "<li>",
		DefPrefix:       ": ",
		DefSuffix:       "</li>",
		RefsPrefix:      " {",
		RefsSeparator:   "|",
		RefsSuffix:      "}",
	}
	opts.RefColumns = []string{"Piece 1", "Piece 2"}

	rows := makeRows(
		[]string{"Forte", "Loud", "Dynamics", "Volume", "Y", "Y"},
		[]string{"Piano", "Soft", "Dynamics", "Volume", "", ""},
		[]string{"Fermata", "Hold", "Dynamics", "", "", "Y"},
	)

	var buf strings.Builder
	stats, err := Format(&buf, rows, opts)
	require.NoError(t, err)

	want := "[Dynamics]\n" +
		"(Volume)\n" +
		"<ul>\n" +
		"<li>Forte: Loud</li> {1|2}\n" +
		"<li>Piano: Soft</li>\n" +
		"</ul>\n" +
		"(Misc)\n" +
		"<ul>\n" +
		"<li>Fermata: Hold</li> {2}\n" +
		"</ul>\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, stats.WithReferences)
}

func TestFormatTrimsCellsButComparesRawValues(t *testing.T) {
	opts := DefaultOptions()
	rows := makeRows(
		[]string{"  Allegro ", " Fast ", "Tempo", "", "", ""},
		[]string{"Adagio", "Slow", "Tempo ", "", "", ""},
	)

	var buf strings.Builder
	_, err := Format(&buf, rows, opts)
	require.NoError(t, err)

	// "Tempo " differs from "Tempo", so a second heading is written.
	want := "Tempo\n\nAllegro - Fast\n\nTempo\n\nAdagio - Slow\n\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatRepeatsHeadingForSeparateRuns(t *testing.T) {
	rows := makeRows(
		[]string{"Allegro", "Fast", "Tempo"},
		[]string{"Forte", "Loud", "Dynamics"},
		[]string{"Adagio", "Slow", "Tempo"},
	)

	var buf strings.Builder
	stats, err := Format(&buf, rows, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, 2, strings.Count(buf.String(), "Tempo\n"))
}

// A leading blank category still opens a group, so BeginTerms and EndTerms
// stay balanced.
func TestFormatLeadingBlankCategory(t *testing.T) {
	opts := DefaultOptions()
	opts.CatPrefix = "["
	opts.CatSuffix = "]"
	opts.BeginTerms = "<ul>"
	opts.EndTerms = "</ul>"

	rows := makeRows(
		[]string{"Lento", "Slow", ""},
		[]string{"Allegro", "Fast", "Tempo"},
	)

	var buf strings.Builder
	stats, err := Format(&buf, rows, opts)
	require.NoError(t, err)

	want := "[]\n" +
		"<ul>\n" +
		"Lento - Slow\n" +
		"</ul>\n" +
		"[Tempo]\n" +
		"<ul>\n" +
		"Allegro - Fast\n" +
		"</ul>\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, strings.Count(buf.String(), "<ul>"), strings.Count(buf.String(), "</ul>"))
}

func TestFormatOmitsMarkedRows(t *testing.T) {
	opts := DefaultOptions()
	opts.Omit = "Omit"
	opts.OmitIndicator = "Y"

	rows := makeRows(
		[]string{"Allegro", "Fast", "Tempo", "", "", "", "Y"},
		[]string{"Adagio", "Slow", "Tempo"},
		[]string{"Forte", "Loud", "Dynamics", "", "", "", "Y"},
	)

	var buf strings.Builder
	stats, err := Format(&buf, rows, opts)
	require.NoError(t, err)

	assert.Equal(t, "Tempo\n\nAdagio - Slow\n\n", buf.String())
	assert.Equal(t, Stats{Rows: 3, Terms: 1, Omitted: 2, Categories: 1}, stats)
}

func TestFormatNoRowsStillWritesEndTerms(t *testing.T) {
	opts := DefaultOptions()
	opts.EndTerms = "END"

	var buf strings.Builder
	stats, err := Format(&buf, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "END\n", buf.String())
	assert.Zero(t, stats.Terms)
}

func TestFormatMissingColumn(t *testing.T) {
	opts := DefaultOptions()
	opts.RefColumns = []string{"Piece 3"}

	var buf strings.Builder
	_, err := Format(&buf, sampleRows(), opts)
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "Piece 3")
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatWriteError(t *testing.T) {
	_, err := Format(failingWriter{}, sampleRows(), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRefs(t *testing.T) {
	row := makeRows([]string{"Forte", "Loud", "Dynamics", "", "Y", "x"})[0]
	cols := []string{"Piece 1", "Piece 2"}

	tests := []struct {
		name       string
		indicators []string
		want       []int
	}{
		{name: "default indicator", indicators: nil, want: []int{1}},
		{name: "several indicators", indicators: []string{"Y", "x"}, want: []int{1, 2}},
		{name: "no match", indicators: []string{"yes"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Refs(row, cols, tt.indicators))
		})
	}
}
