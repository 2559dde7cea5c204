// =============================================================================
// Glossary Formatter - Formatter Module
// =============================================================================
//
// This module contains the generic rendering routine. It walks the term rows
// in sheet order and writes one line per emitted fragment:
//
//   <CatPrefix>Category<CatSuffix>
//   <SubcatPrefix>Sub-category<SubcatSuffix>
//   <BeginTerms>
//   <TermPrefix>Term<TermSuffix><DefPrefix>Definition<DefSuffix><RefsPrefix>1,2<RefsSuffix>
//   ...
//   <EndTerms>
//
// GROUPING:
//   Rows are never sorted. A heading is written whenever the category (or,
//   within a category, the sub-category) differs from the previous written
//   row, so a category that appears in two separate runs gets two headings.
//
// =============================================================================

package glossary

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ginjaninja78/glossary-formatter/internal/types"
)

// ErrColumnNotFound is returned when a configured column is not present in
// the term rows.
var ErrColumnNotFound = errors.New("column not found")

// =============================================================================
// OPTIONS
// =============================================================================

// Columns names the spreadsheet columns the formatter reads.
type Columns struct {
	// Term is the header of the column containing terms.
	Term string

	// Definition is the header of the column containing definitions.
	Definition string

	// Category is the header of the column containing categories.
	Category string

	// SubCategory is the header of the column containing sub-categories.
	// Leave empty to ignore sub-categories.
	SubCategory string

	// Omit is the header of a column marking terms to leave out.
	// Leave empty to write every term.
	Omit string
}

// Fragments are the strings written around each part of the glossary.
type Fragments struct {
	CatPrefix string `yaml:"cat_prefix"`
	CatSuffix string `yaml:"cat_suffix"`

	SubcatPrefix string `yaml:"subcat_prefix"`
	SubcatSuffix string `yaml:"subcat_suffix"`

	// EmptySubcatName is the heading used when a category switches to terms
	// with no sub-category.
	EmptySubcatName string `yaml:"empty_subcat_name"`

	// BeginTerms and EndTerms wrap the terms of each (sub-)category.
	BeginTerms string `yaml:"begin_terms"`
	EndTerms   string `yaml:"end_terms"`

	TermPrefix string `yaml:"term_prefix"`
	TermSuffix string `yaml:"term_suffix"`

	DefPrefix string `yaml:"def_prefix"`
	DefSuffix string `yaml:"def_suffix"`

	RefsPrefix    string `yaml:"refs_prefix"`
	RefsSeparator string `yaml:"refs_separator"`
	RefsSuffix    string `yaml:"refs_suffix"`
}

// Options controls a single Format call.
type Options struct {
	Columns
	Fragments

	// OmitIndicator is the omit cell value that marks a term to leave out.
	OmitIndicator string

	// RefColumns are the headers of the reference columns, in legend order.
	// Leave empty to write no reference numbers.
	RefColumns []string

	// RefIndicators are the cell values that mark a reference.
	// Default: ["Y"]
	RefIndicators []string
}

// DefaultFragments returns the minimal formatting: category names on their
// own line and "term - definition" entries.
func DefaultFragments() Fragments {
	return Fragments{
		CatSuffix:       "\n",
		SubcatSuffix:    "\n",
		EmptySubcatName: "Other",
		DefPrefix:       " - ",
		RefsSeparator:   ",",
	}
}

// DefaultOptions returns options that print categories but no
// sub-categories, omissions or references.
func DefaultOptions() Options {
	return Options{
		Columns: Columns{
			Term:       "Term",
			Definition: "Definition",
			Category:   "Category",
		},
		Fragments:     DefaultFragments(),
		RefIndicators: []string{"Y"},
	}
}

// =============================================================================
// STATS
// =============================================================================

// Stats describes what a Format call wrote.
type Stats struct {
	// Rows is the number of term rows seen, including omitted ones.
	Rows int

	// Terms is the number of term lines written.
	Terms int

	// Omitted is the number of rows skipped by the omit column.
	Omitted int

	// Categories is the number of category headings written.
	Categories int

	// SubCategories is the number of sub-category headings written.
	SubCategories int

	// WithReferences is the number of term lines carrying reference numbers.
	WithReferences int
}

// =============================================================================
// FORMATTER
// =============================================================================

// Format writes the glossary for rows to w.
//
// PARAMETERS:
//   - w: Destination for the formatted text.
//   - rows: Term rows in sheet order.
//   - opts: Column names and formatting fragments.
//
// RETURNS:
//   - Stats describing the output.
//   - An error if a configured column is missing or writing fails.
func Format(w io.Writer, rows []types.Row, opts Options) (Stats, error) {
	var stats Stats

	if err := CheckColumns(rows, opts); err != nil {
		return stats, err
	}

	out := &lineWriter{w: w}

	var previousCat, previousSubcat string
	started := false

	for _, row := range rows {
		stats.Rows++

		if opts.Omit != "" && row.Value(opts.Omit) == opts.OmitIndicator {
			stats.Omitted++
			continue
		}

		cat := row.Value(opts.Category)
		subcat := ""
		if opts.SubCategory != "" {
			subcat = row.Value(opts.SubCategory)
		}

		switch {
		case !started || cat != previousCat:
			if stats.Terms > 0 {
				out.println(opts.EndTerms)
			}
			out.println(opts.CatPrefix + strings.TrimSpace(cat) + opts.CatSuffix)
			stats.Categories++

			// A blank sub-category directly under a category gets no heading.
			if opts.SubCategory != "" && subcat != "" {
				out.println(opts.SubcatPrefix + strings.TrimSpace(subcat) + opts.SubcatSuffix)
				stats.SubCategories++
			}
			if opts.BeginTerms != "" {
				out.println(opts.BeginTerms)
			}

		case opts.SubCategory != "" && subcat != previousSubcat:
			if stats.Terms > 0 {
				out.println(opts.EndTerms)
			}
			name := opts.EmptySubcatName
			if subcat != "" {
				name = strings.TrimSpace(subcat)
			}
			out.println(opts.SubcatPrefix + name + opts.SubcatSuffix)
			stats.SubCategories++
			if opts.BeginTerms != "" {
				out.println(opts.BeginTerms)
			}
		}

		line := opts.TermPrefix + strings.TrimSpace(row.Value(opts.Term)) + opts.TermSuffix +
			opts.DefPrefix + strings.TrimSpace(row.Value(opts.Definition)) + opts.DefSuffix

		if len(opts.RefColumns) > 0 {
			if refs := Refs(row, opts.RefColumns, opts.RefIndicators); len(refs) > 0 {
				line += opts.RefsPrefix + joinRefs(refs, opts.RefsSeparator) + opts.RefsSuffix
				stats.WithReferences++
			}
		}
		out.println(line)

		stats.Terms++
		previousCat = cat
		previousSubcat = subcat
		started = true
	}

	out.println(opts.EndTerms)

	if out.err != nil {
		return stats, fmt.Errorf("failed to write glossary: %w", out.err)
	}
	return stats, nil
}

// =============================================================================
// REFERENCES
// =============================================================================

// Refs returns the 1-based positions of the columns in cols whose value for
// row is one of indicators. A nil indicators list means ["Y"].
func Refs(row types.Row, cols []string, indicators []string) []int {
	if indicators == nil {
		indicators = []string{"Y"}
	}

	var refs []int
	for i, col := range cols {
		if slices.Contains(indicators, row.Value(col)) {
			refs = append(refs, i+1)
		}
	}
	return refs
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// CheckColumns verifies every column named in opts exists in the rows.
func CheckColumns(rows []types.Row, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	required := []string{opts.Term, opts.Definition, opts.Category}
	if opts.SubCategory != "" {
		required = append(required, opts.SubCategory)
	}
	if opts.Omit != "" {
		required = append(required, opts.Omit)
	}
	required = append(required, opts.RefColumns...)

	first := rows[0]
	for _, col := range required {
		if !first.Has(col) {
			return fmt.Errorf("%w: %q (row %d has %s)", ErrColumnNotFound, col, first.Number, strings.Join(first.Headers, ", "))
		}
	}
	return nil
}

func joinRefs(refs []int, sep string) string {
	parts := make([]string, len(refs))
	for i, n := range refs {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

// lineWriter writes newline-terminated fragments and keeps the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) println(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.w, s+"\n")
}
