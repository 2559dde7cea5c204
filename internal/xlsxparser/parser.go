// =============================================================================
// Glossary Formatter - XLSX Glossary Loader
// =============================================================================
//
// This module is responsible for reading the glossary spreadsheet. The first
// row of the sheet holds the column headers; every following row is one term.
//
// EXPECTED LAYOUT:
//
//   | Term     | Definition     | Category | Sub-category | Piece 1 | Piece 2 |
//   |----------|----------------|----------|--------------|---------|---------|
//   | Allegro  | Fast           | Tempo    |              | Y       |         |
//   | Forte    | Loud           | Dynamics | Volume       | Y       | Y       |
//   |          |                |          |              |         |         |  <- reading stops here
//
// Only the "Term" column is required. Any other column is carried through to
// the formatter, keyed by its header name.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ginjaninja78/glossary-formatter/internal/types"
	"github.com/xuri/excelize/v2"
)

// ErrTermColumnMissing is returned when the header row has no term column.
var ErrTermColumnMissing = errors.New("term column not found in header row")

// ErrSheetNotFound is returned when the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet represents the glossary rows loaded from a single worksheet.
type Sheet struct {
	// File is the path to the source workbook.
	File string

	// Name is the worksheet the rows were read from.
	Name string

	// Header contains the column headers in sheet order.
	Header []string

	// Rows contains one entry per term, in sheet order.
	// Rows after the first blank term cell are not included.
	Rows []types.Row
}

// =============================================================================
// LOAD OPTIONS
// =============================================================================

// LoadOptions controls how the glossary sheet is read.
type LoadOptions struct {
	// Sheet is the worksheet name. An empty name selects the first sheet.
	// Default: "Sheet1"
	Sheet string

	// LastColumn limits reading to the first N columns.
	// A value of 0 reads every column in the header row.
	LastColumn int

	// TermColumn is the header of the column containing terms.
	// Reading stops at the first row where this cell is empty.
	// Default: "Term"
	TermColumn string
}

// DefaultLoadOptions returns the default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sheet:      "Sheet1",
		LastColumn: 0,
		TermColumn: "Term",
	}
}

// =============================================================================
// LOADER FUNCTIONS
// =============================================================================

// Load reads a glossary workbook and returns its term rows.
//
// PARAMETERS:
//   - path: The path to the XLSX workbook.
//   - opts: Sheet and column selection.
//
// RETURNS:
//   - A pointer to the Sheet containing the header and term rows.
//   - An error if the file cannot be opened, the sheet does not exist,
//     or the header row has no term column.
func Load(path string, opts LoadOptions) (*Sheet, error) {
	if opts.TermColumn == "" {
		opts.TermColumn = "Term"
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
	}

	sheet := &Sheet{
		File:   path,
		Name:   sheetName,
		Header: []string{},
		Rows:   []types.Row{},
	}

	// An empty sheet has nothing to format.
	if len(rows) == 0 {
		return sheet, nil
	}

	sheet.Header = parseHeader(rows[0], opts.LastColumn)
	if !slices.Contains(sheet.Header, opts.TermColumn) {
		return nil, fmt.Errorf("%w: %q in sheet %q", ErrTermColumnMissing, opts.TermColumn, sheetName)
	}

	for i := 1; i < len(rows); i++ {
		row := parseRow(rows[i], sheet.Header, i+1)

		// Stop at the first blank term cell.
		if row.Value(opts.TermColumn) == "" {
			break
		}

		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// SheetNames returns the worksheet names of a workbook in tab order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveSheet maps the requested sheet name onto a worksheet in the file.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}

	if name == "" {
		return sheets[0], nil
	}

	if slices.Contains(sheets, name) {
		return name, nil
	}

	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, name, strings.Join(sheets, ", "))
}

// parseHeader extracts the header names from the first row.
// Header cells are trimmed; the header is padded or cut to lastColumn
// when a limit is given.
func parseHeader(cells []string, lastColumn int) []string {
	width := len(cells)
	if lastColumn > 0 {
		width = lastColumn
	}

	header := make([]string, width)
	for i := 0; i < width; i++ {
		if i < len(cells) {
			header[i] = strings.TrimSpace(cells[i])
		}
	}
	return header
}

// parseRow maps the cells of a data row onto the header names.
// excelize trims trailing empty cells, so short rows read as "".
func parseRow(cells []string, header []string, number int) types.Row {
	row := types.NewRow(number, header)
	for i, name := range header {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		row.Set(name, value)
	}
	return row
}
