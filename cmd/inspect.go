// =============================================================================
// Glossary Formatter - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which summarises a glossary
// workbook before rendering it: the sheets, the header row, categories and
// sub-categories with term counts, reference column counts, and warnings for
// missing columns or groups that are split across separate runs of rows.
//
// COMMAND USAGE:
//   glossary inspect FILE [flags]
//
// =============================================================================

package cmd

import (
	"github.com/ginjaninja78/glossary-formatter/internal/presets"
	"github.com/ginjaninja78/glossary-formatter/internal/report"
	"github.com/ginjaninja78/glossary-formatter/internal/xlsxparser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newInspectCmd builds the inspect command.
func newInspectCmd(opts *rootOptions) *cobra.Command {
	var layout layoutFlags

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarise the categories and references in a glossary workbook",
		Long: `The inspect command reads a glossary workbook with the current layout
configuration and prints a summary instead of the glossary itself.

Because headings are written whenever the category changes from one row to
the next, a category whose rows are not adjacent is printed under several
headings. inspect lists such categories and sub-categories as warnings.`,
		Args: requireGlossaryFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.apply(cmd, opts.cfg); err != nil {
				return err
			}
			return runInspect(cmd, opts, args[0])
		},
	}
	layout.register(cmd)

	return cmd
}

// runInspect loads the workbook and prints its summary.
func runInspect(cmd *cobra.Command, opts *rootOptions, path string) error {
	sheets, err := xlsxparser.SheetNames(path)
	if err != nil {
		return err
	}

	sheet, err := xlsxparser.Load(path, opts.cfg.LoadOptions())
	if err != nil {
		return err
	}

	// Reference columns are always summarised, whichever preset prints them.
	fmtOpts := opts.cfg.FormatOptions(presets.Minimal())
	fmtOpts.RefColumns = opts.cfg.References.Columns

	summary := report.Summarize(sheet, sheets, fmtOpts)
	opts.logger.Debug("Summarised workbook",
		zap.String("file", path),
		zap.Int("categories", len(summary.Categories)),
		zap.Int("warnings", len(summary.Warnings)))

	return report.Render(cmd.OutOrStdout(), summary)
}
