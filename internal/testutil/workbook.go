// Package testutil builds glossary workbooks for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// GlossaryHeader is the header row used by the sample glossaries.
var GlossaryHeader = []string{"Term", "Definition", "Category", "Sub-category", "Piece 1", "Piece 2"}

// SampleGlossary returns a small music glossary covering category and
// sub-category transitions and reference flags.
func SampleGlossary() [][]string {
	return [][]string{
		GlossaryHeader,
		{"Allegro", "Fast", "Tempo", "", "Y", ""},
		{"Adagio", "Slow", "Tempo", "", "", ""},
		{"Forte", "Loud", "Dynamics", "Volume", "Y", "Y"},
		{"Piano", "Soft", "Dynamics", "Volume", "", "Y"},
		{"Crescendo", "Getting louder", "Dynamics", "Change", "", ""},
		{"Fermata", "Hold", "Dynamics", "", "Y", ""},
	}
}

// WriteWorkbook writes rows to sheet in a new workbook under t.TempDir and
// returns the file path. The first row is written to row 1.
func WriteWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()
	return WriteWorkbookSheets(t, map[string][][]string{sheet: rows}, sheet)
}

// WriteWorkbookSheets writes several sheets to a new workbook. first names the
// sheet that replaces the default "Sheet1" tab so tab order is predictable.
func WriteWorkbookSheets(t *testing.T, sheets map[string][][]string, first string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if first != "Sheet1" {
		if err := f.SetSheetName("Sheet1", first); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}

	for name, rows := range sheets {
		if name != first {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet %q: %v", name, err)
			}
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("write row %d: %v", i+1, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "glossary.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}
