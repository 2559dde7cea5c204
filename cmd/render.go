// =============================================================================
// Glossary Formatter - Render Commands
// =============================================================================
//
// This file defines the commands that render a glossary workbook:
//
// COMMAND USAGE:
//   glossary minimal  FILE [flags]
//   glossary markdown FILE [flags]
//   glossary latex    FILE [flags]
//   glossary render   FILE [--preset NAME | --template FILE.yaml] [flags]
//
// LAYOUT FLAGS (override the configuration file):
//   --sheet            : Worksheet holding the glossary
//   --last-column      : Read only the first N columns (0 = all)
//   --sub-category-col : Header of the sub-category column
//   --ref-col          : Header of a reference column (repeatable)
//   --ref-indicator    : Cell value marking a reference (repeatable)
//   --omit-col         : Header of the column marking terms to omit
//   --omit-indicator   : Cell value marking a term to omit
//   --output, -o       : Output file pattern instead of stdout
//
// =============================================================================

package cmd

import (
	"github.com/ginjaninja78/glossary-formatter/internal/config"
	"github.com/ginjaninja78/glossary-formatter/internal/presets"
	"github.com/ginjaninja78/glossary-formatter/internal/renderer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// LAYOUT FLAGS
// =============================================================================

// layoutFlags holds the per-command layout overrides.
type layoutFlags struct {
	sheet         string
	lastColumn    int
	subCategory   string
	refCols       []string
	refIndicators []string
	omitCol       string
	omitIndicator string
	output        string
}

// register adds the layout flags to cmd.
func (f *layoutFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.sheet, "sheet", "", "Worksheet holding the glossary (empty selects the first sheet)")
	flags.IntVar(&f.lastColumn, "last-column", 0, "Read only the first N columns (0 reads all)")
	flags.StringVar(&f.subCategory, "sub-category-col", "", "Header of the sub-category column")
	flags.StringArrayVar(&f.refCols, "ref-col", nil, "Header of a reference column (repeatable, in legend order)")
	flags.StringArrayVar(&f.refIndicators, "ref-indicator", nil, "Cell value marking a reference (repeatable)")
	flags.StringVar(&f.omitCol, "omit-col", "", "Header of the column marking terms to omit")
	flags.StringVar(&f.omitIndicator, "omit-indicator", "", "Cell value marking a term to omit (default Y)")
}

// registerOutput adds the --output flag for commands that write a glossary.
func (f *layoutFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file pattern, e.g. out/{original}_{preset} (default stdout)")
}

// apply copies the flags the user set onto cfg.
func (f *layoutFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = f.sheet
	}
	if flags.Changed("last-column") {
		cfg.LastColumn = f.lastColumn
	}
	if flags.Changed("sub-category-col") {
		cfg.Columns.SubCategory = f.subCategory
	}
	if flags.Changed("ref-col") {
		cfg.References.Columns = f.refCols
	}
	if flags.Changed("ref-indicator") {
		cfg.References.Indicators = f.refIndicators
	}
	if flags.Changed("omit-col") {
		cfg.Omit.Column = f.omitCol
	}
	if flags.Changed("omit-indicator") {
		cfg.Omit.Indicator = f.omitIndicator
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}

	if cfg.Omit.Column != "" && cfg.Omit.Indicator == "" {
		cfg.Omit.Indicator = "Y"
	}
	return cfg.Validate()
}

// =============================================================================
// PRESET COMMANDS
// =============================================================================

// newPresetCmd builds the command for one built-in preset.
func newPresetCmd(opts *rootOptions, name string) *cobra.Command {
	preset, err := presets.Lookup(name)
	if err != nil {
		panic(err)
	}

	var layout layoutFlags
	cmd := &cobra.Command{
		Use:   preset.Name + " FILE",
		Short: preset.Description,
		Long: preset.Description + `.

The glossary is written to stdout unless --output is given.`,
		Args: requireGlossaryFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.apply(cmd, opts.cfg); err != nil {
				return err
			}
			return runRender(cmd, opts, preset, args[0])
		},
	}
	layout.register(cmd)
	layout.registerOutput(cmd)
	return cmd
}

// =============================================================================
// GENERIC RENDER COMMAND
// =============================================================================

// newRenderCmd builds the render command, which accepts any built-in preset
// or a YAML template.
func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		layout       layoutFlags
		presetName   string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a glossary with a named preset or a YAML template",
		Long: `The render command formats a glossary with one of the built-in presets
(minimal, markdown, latex) or with a custom YAML template.

A template sets the strings written around each part of the glossary:

  name: html
  extension: .html
  header: "<h1>Glossary</h1>"
  cat_prefix: "<h2>"
  cat_suffix: "</h2>"
  begin_terms: "<dl>"
  end_terms: "</dl>"
  term_prefix: "<dt>"
  term_suffix: "</dt>"
  def_prefix: "<dd>"
  def_suffix: "</dd>"

Unset template fields keep the values of the minimal preset.`,
		Args: requireGlossaryFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.apply(cmd, opts.cfg); err != nil {
				return err
			}

			var (
				preset presets.Preset
				err    error
			)
			if templatePath != "" {
				preset, err = presets.LoadTemplate(templatePath)
			} else {
				preset, err = presets.Lookup(presetName)
			}
			if err != nil {
				return err
			}

			return runRender(cmd, opts, preset, args[0])
		},
	}

	cmd.Flags().StringVarP(&presetName, "preset", "p", "minimal", "Built-in preset: minimal, markdown or latex")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "YAML template defining a custom preset")
	cmd.MarkFlagsMutuallyExclusive("preset", "template")
	layout.register(cmd)
	layout.registerOutput(cmd)

	return cmd
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// runRender renders one workbook and reports where the output went.
func runRender(cmd *cobra.Command, opts *rootOptions, preset presets.Preset, path string) error {
	result := renderer.New(opts.cfg, preset, cmd.OutOrStdout(), opts.logger).Run(path)
	if !result.Success {
		return result.Error
	}

	if result.OutputFile != "" {
		cmd.PrintErrf("Wrote %s (%d terms)\n", result.OutputFile, result.Stats.Terms)
	}
	opts.logger.Debug("Render complete",
		zap.String("sheet", result.Sheet),
		zap.Int("categories", result.Stats.Categories),
		zap.Int("sub_categories", result.Stats.SubCategories))
	return nil
}
