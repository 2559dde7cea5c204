// =============================================================================
// Glossary Formatter - Workbook Report
// =============================================================================
//
// This module summarises a glossary workbook for the inspect command:
//   - Sheets, header columns and term counts
//   - Categories and sub-categories in order of first appearance
//   - Terms flagged in each reference column
//   - Warnings for missing columns, blank categories, and groups split into
//     several runs (each run gets its own heading when formatted)
//
// =============================================================================

// Package report summarises a glossary workbook for the inspect command.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ginjaninja78/glossary-formatter/internal/glossary"
	"github.com/ginjaninja78/glossary-formatter/internal/xlsxparser"
)

var (
	// titleStyle for the report heading
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	// sectionStyle for section headings
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	// dimStyle for labels and muted text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for grouping warnings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for the summary header
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Summary describes the contents of a glossary sheet.
type Summary struct {
	File   string
	Sheet  string
	Sheets []string
	Header []string

	// Rows is the number of term rows, Omitted how many of them the omit
	// column removes.
	Rows    int
	Omitted int

	// Categories are listed in order of first appearance.
	Categories []Category
	References []Reference

	// Warnings lists missing columns and groups split into several runs.
	Warnings []string
}

// Category is one category with the terms written under it.
type Category struct {
	Name          string
	Terms         int
	Runs          int
	SubCategories []SubCategory
}

// SubCategory is one sub-category within a category. An empty Name holds
// the terms without a sub-category.
type SubCategory struct {
	Name  string
	Terms int
	Runs  int
}

// Reference counts the terms flagged in one reference column.
type Reference struct {
	Number int
	Column string
	Terms  int
}

// Summarize walks the rows the way the formatter does and counts categories,
// sub-categories and references. A group with more than one run gets a
// heading per run when formatted.
func Summarize(sheet *xlsxparser.Sheet, sheets []string, opts glossary.Options) Summary {
	s := Summary{
		File:   sheet.File,
		Sheet:  sheet.Name,
		Sheets: sheets,
		Header: sheet.Header,
		Rows:   len(sheet.Rows),
	}

	for _, col := range configuredColumns(opts) {
		if !slices.Contains(sheet.Header, col) {
			s.Warnings = append(s.Warnings, fmt.Sprintf("column %q is not in the header", col))
		}
	}

	s.References = make([]Reference, len(opts.RefColumns))
	for i, col := range opts.RefColumns {
		s.References[i] = Reference{Number: i + 1, Column: col}
	}

	catIndex := map[string]int{}
	var prevCat, prevSub string
	started := false

	for _, row := range sheet.Rows {
		if opts.Omit != "" && row.Value(opts.Omit) == opts.OmitIndicator {
			s.Omitted++
			continue
		}

		cat := row.Value(opts.Category)
		sub := ""
		if opts.SubCategory != "" {
			sub = row.Value(opts.SubCategory)
		}

		i, ok := catIndex[cat]
		if !ok {
			i = len(s.Categories)
			catIndex[cat] = i
			s.Categories = append(s.Categories, Category{Name: cat})
		}
		c := &s.Categories[i]
		c.Terms++

		newCat := !started || cat != prevCat
		if newCat {
			c.Runs++
		}

		j := subIndex(c, sub)
		c.SubCategories[j].Terms++
		if newCat || sub != prevSub {
			c.SubCategories[j].Runs++
		}

		for _, n := range glossary.Refs(row, opts.RefColumns, opts.RefIndicators) {
			s.References[n-1].Terms++
		}

		prevCat, prevSub, started = cat, sub, true
	}

	for _, c := range s.Categories {
		if strings.TrimSpace(c.Name) == "" {
			s.Warnings = append(s.Warnings, fmt.Sprintf("blank category: %s printed under an empty heading", plural(c.Terms, "term")))
		}
		if c.Runs > 1 {
			s.Warnings = append(s.Warnings, fmt.Sprintf("category %q appears in %d separate runs", strings.TrimSpace(c.Name), c.Runs))
		}
		for _, sc := range c.SubCategories {
			if sc.Name != "" && sc.Runs > c.Runs {
				s.Warnings = append(s.Warnings, fmt.Sprintf("sub-category %q of %q appears in %d separate runs",
					strings.TrimSpace(sc.Name), strings.TrimSpace(c.Name), sc.Runs))
			}
		}
	}

	return s
}

// Render writes the summary as styled text.
func Render(w io.Writer, s Summary) error {
	var b strings.Builder

	sheetLine := s.Sheet
	if len(s.Sheets) > 1 {
		sheetLine += dimStyle.Render(" (of " + strings.Join(s.Sheets, ", ") + ")")
	}

	header := fmt.Sprintf("%s\n%s %s\n%s %s\n%s %s\n%s %d %s",
		titleStyle.Render("Glossary workbook"),
		dimStyle.Render("File:   "), s.File,
		dimStyle.Render("Sheet:  "), sheetLine,
		dimStyle.Render("Columns:"), strings.Join(s.Header, ", "),
		dimStyle.Render("Terms:  "), s.Rows-s.Omitted,
		dimStyle.Render(fmt.Sprintf("(%d omitted)", s.Omitted)),
	)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Categories"))
	b.WriteString("\n")
	if len(s.Categories) == 0 {
		b.WriteString(dimStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "  %-24s %s\n", strings.TrimSpace(c.Name), dimStyle.Render(plural(c.Terms, "term")))
		for _, sc := range c.SubCategories {
			name := strings.TrimSpace(sc.Name)
			if sc.Name == "" {
				name = "(no sub-category)"
			}
			fmt.Fprintf(&b, "    %-22s %s\n", name, dimStyle.Render(plural(sc.Terms, "term")))
		}
	}

	if len(s.References) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("References"))
		b.WriteString("\n")
		for _, r := range s.References {
			fmt.Fprintf(&b, "  %d %-22s %s\n", r.Number, r.Column, dimStyle.Render(plural(r.Terms, "term")))
		}
	}

	if len(s.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Warnings"))
		b.WriteString("\n")
		for _, msg := range s.Warnings {
			b.WriteString(warnStyle.Render("  ! " + msg))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func configuredColumns(opts glossary.Options) []string {
	cols := []string{opts.Term, opts.Definition, opts.Category}
	if opts.SubCategory != "" {
		cols = append(cols, opts.SubCategory)
	}
	if opts.Omit != "" {
		cols = append(cols, opts.Omit)
	}
	return append(cols, opts.RefColumns...)
}

func subIndex(c *Category, name string) int {
	for i, sc := range c.SubCategories {
		if sc.Name == name {
			return i
		}
	}
	c.SubCategories = append(c.SubCategories, SubCategory{Name: name})
	return len(c.SubCategories) - 1
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
