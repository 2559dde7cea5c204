// =============================================================================
// Glossary Formatter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xlsxparser
//   - glossary
//   - report
//
// =============================================================================

package types

// =============================================================================
// TERM ROW
// =============================================================================

// Row represents a single term row read from the glossary spreadsheet.
// Values are keyed by the header name of the column they came from, and the
// header order is preserved in Headers.
type Row struct {
	// Number is the 1-based row number in the worksheet.
	// Useful for error reporting.
	Number int

	// Headers contains the column headers in sheet order.
	Headers []string

	// Values contains the cell values, keyed by header name.
	Values map[string]string
}

// NewRow creates an empty row for the given sheet row number and headers.
func NewRow(number int, headers []string) Row {
	return Row{
		Number:  number,
		Headers: headers,
		Values:  make(map[string]string, len(headers)),
	}
}

// Get returns the value stored under a column header and whether the column
// exists in this row.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Value returns the value stored under a column header, or "" when the
// column does not exist.
func (r Row) Value(column string) string {
	return r.Values[column]
}

// Has reports whether the row carries a column with the given header.
func (r Row) Has(column string) bool {
	_, ok := r.Values[column]
	return ok
}

// Set stores a value under a column header.
func (r Row) Set(column, value string) {
	r.Values[column] = value
}
