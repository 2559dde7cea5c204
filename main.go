// =============================================================================
// Glossary Formatter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Glossary Formatter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   glossary minimal  FILE   - Print the glossary as plain text
//   glossary markdown FILE   - Print the glossary as Markdown
//   glossary latex    FILE   - Print the glossary as a LaTeX document
//   glossary render   FILE   - Print the glossary with a preset or YAML template
//   glossary inspect  FILE   - Summarise the workbook
//   glossary version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loader, formatter, presets, renderer, report
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/glossary-formatter/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
