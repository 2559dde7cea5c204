// =============================================================================
// Glossary Formatter - File Manager Utility
// =============================================================================
//
// This module provides file utilities for writing rendered glossaries:
//   - Output file naming from a pattern with placeholders
//   - Output file creation (including parent directories)
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name from a pattern.
//
// PARAMETERS:
//   - pattern: The pattern for the file name.
//              Placeholders:
//                {uuid}      - A random UUID
//                {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//                {date}      - Current date (YYYYMMDD)
//                {time}      - Current time (HHMMSS)
//                {<key>}     - Any key supplied in params
//   - params: A map of placeholder values (e.g. "preset", "original").
//   - ext: Extension appended when the result has none (e.g. ".md").
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//   pattern: "out/{original}_{preset}"
//   params:  {"original": "terms", "preset": "markdown"}
//   ext:     ".md"
//   output:  "out/terms_markdown.md"
func GenerateOutputFileName(pattern string, params map[string]string, ext string) string {
	return generateOutputFileName(pattern, params, ext, time.Now())
}

func generateOutputFileName(pattern string, params map[string]string, ext string, now time.Time) string {
	replacements := []string{
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	}

	// Only draw a UUID when the pattern asks for one.
	if strings.Contains(pattern, "{uuid}") {
		replacements = append(replacements, "{uuid}", uuid.New().String())
	}

	for key, value := range params {
		replacements = append(replacements, "{"+key+"}", value)
	}

	result := strings.NewReplacer(replacements...).Replace(pattern)

	if ext != "" && filepath.Ext(result) == "" {
		result += ext
	}

	return result
}

// OriginalName returns the base name of path without its extension.
func OriginalName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// =============================================================================
// OUTPUT FILE CREATION
// =============================================================================

// CreateOutputFile creates (or truncates) the file at path, creating any
// missing parent directories first.
func CreateOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
