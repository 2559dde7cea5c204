// =============================================================================
// Glossary Formatter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (glossary)
//   ├── minimal  (glossary minimal FILE)
//   ├── markdown (glossary markdown FILE)
//   ├── latex    (glossary latex FILE)
//   ├── render   (glossary render --preset NAME | --template FILE.yaml FILE)
//   ├── inspect  (glossary inspect FILE)
//   └── version  (glossary version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the layout configuration
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ginjaninja78/glossary-formatter/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// SHARED STATE
// =============================================================================

// rootOptions holds the global flags and the state built from them before
// a subcommand runs.
type rootOptions struct {
	// cfgFile holds the path to the configuration file.
	// Empty means glossary.yaml in the working directory, if present.
	cfgFile string

	// verbose enables debug logging when set to true.
	verbose bool

	// cfg is the loaded layout configuration.
	cfg *config.Config

	// logger writes JSON logs to stderr so stdout stays a clean document.
	logger *zap.Logger
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "glossary",
		Short: "Glossary Formatter - Render a spreadsheet glossary as text, Markdown or LaTeX",
		Long: `Glossary Formatter reads a glossary from an .xlsx workbook and prints it as
formatted text. The first row of the sheet holds the column headers; each
following row is one term, up to the first row with an empty "Term" cell.

Terms are grouped under their category and sub-category headings in sheet
order. Reference columns (e.g. "Piece 1", "Piece 2") marked with "Y" are
printed as reference numbers by the LaTeX preset.

Example Usage:
  glossary minimal terms.xlsx               # Plain text to stdout
  glossary markdown terms.xlsx > terms.md   # Markdown
  glossary latex terms.xlsx -o out/{original}
  glossary render --template html.yaml terms.xlsx
  glossary inspect terms.xlsx               # Summarise categories and references`,

		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// --config flag: Path to the layout configuration file.
	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		"",
		"Path to the layout configuration file (default is "+config.DefaultFile+" if present)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.AddCommand(
		newPresetCmd(opts, "minimal"),
		newPresetCmd(opts, "markdown"),
		newPresetCmd(opts, "latex"),
		newRenderCmd(opts),
		newInspectCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init loads the configuration and builds the logger.
func (o *rootOptions) init() error {
	cfg, err := config.Resolve(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if o.verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger

	logger.Debug("Loaded configuration",
		zap.String("config", o.cfgFile),
		zap.String("sheet", cfg.Sheet),
		zap.Strings("references", cfg.References.Columns))
	return nil
}

// requireGlossaryFile accepts exactly one positional argument: the workbook.
func requireGlossaryFile(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("please supply the name of the glossary xlsx file")
	case len(args) > 1:
		return errors.New("please supply the name of the glossary xlsx file as a single argument")
	}
	return nil
}
