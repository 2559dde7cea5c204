// =============================================================================
// Glossary Formatter - Renderer Module
// =============================================================================
//
// This module orchestrates rendering a single glossary workbook with one
// preset, from loading the sheet to writing the finished document.
//
// RENDERING PIPELINE:
//   1. Load the term rows from the workbook
//   2. Open the output (stdout, or a file named from the output pattern)
//   3. Write the preset header and reference legend
//   4. Format the glossary body
//   5. Write the preset footer
//   6. Flush and close the output
//
// =============================================================================

package renderer

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/glossary-formatter/internal/config"
	"github.com/ginjaninja78/glossary-formatter/internal/glossary"
	"github.com/ginjaninja78/glossary-formatter/internal/presets"
	"github.com/ginjaninja78/glossary-formatter/internal/xlsxparser"
	"github.com/ginjaninja78/glossary-formatter/pkg/utils"
	"go.uber.org/zap"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of rendering a single workbook.
type Result struct {
	// FilePath is the path to the input workbook.
	FilePath string

	// Sheet is the worksheet that was read.
	Sheet string

	// OutputFile is the path to the written file.
	// This is empty when writing to stdout or when rendering failed.
	OutputFile string

	// Success indicates whether rendering finished.
	Success bool

	// Error contains the error if rendering failed.
	Error error

	// Stats contains rendering statistics.
	Stats Stats
}

// Stats contains statistics about the rendering.
type Stats struct {
	glossary.Stats

	// ProcessingTime is the time taken to render the file.
	ProcessingTime time.Duration
}

// =============================================================================
// RENDERER STRUCTURE
// =============================================================================

// Renderer renders glossary workbooks with one preset.
type Renderer struct {
	cfg    *config.Config
	preset presets.Preset
	stdout io.Writer
	logger *zap.Logger
}

// New creates a new Renderer.
//
// PARAMETERS:
//   - cfg: The glossary layout configuration.
//   - preset: The output dialect.
//   - stdout: Destination when cfg.Output is empty.
//   - logger: Logger for progress messages; nil disables logging.
func New(cfg *config.Config, preset presets.Preset, stdout io.Writer, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		cfg:    cfg,
		preset: preset,
		stdout: stdout,
		logger: logger.With(zap.String("preset", preset.Name)),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run renders the workbook at inputPath.
func (r *Renderer) Run(inputPath string) Result {
	startTime := time.Now()
	result := Result{FilePath: inputPath}
	log := r.logger.With(zap.String("file", inputPath))

	// =========================================================================
	// STEP 1: LOAD TERM ROWS
	// =========================================================================

	sheet, err := xlsxparser.Load(inputPath, r.cfg.LoadOptions())
	if err != nil {
		result.Error = fmt.Errorf("failed to load glossary: %w", err)
		return result
	}

	result.Sheet = sheet.Name
	log.Debug("Loaded glossary rows",
		zap.String("sheet", sheet.Name),
		zap.Strings("header", sheet.Header),
		zap.Int("rows", len(sheet.Rows)))

	// Nothing is written for a sheet that lacks a configured column.
	if err := glossary.CheckColumns(sheet.Rows, r.cfg.FormatOptions(r.preset)); err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 2: OPEN OUTPUT
	// =========================================================================

	dest := r.stdout
	var closer io.Closer
	if r.cfg.Output != "" {
		name := utils.GenerateOutputFileName(r.cfg.Output, map[string]string{
			"preset":   r.preset.Name,
			"original": utils.OriginalName(inputPath),
		}, r.preset.Extension)

		f, err := utils.CreateOutputFile(name)
		if err != nil {
			result.Error = err
			return result
		}
		dest, closer = f, f
		result.OutputFile = name
	}

	// =========================================================================
	// STEPS 3-5: HEADER, BODY, FOOTER
	// =========================================================================

	w := bufio.NewWriter(dest)
	stats, err := r.write(w, sheet)
	if err == nil {
		err = w.Flush()
	}
	if closer != nil {
		if cerr := closer.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}
	if err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.Stats = Stats{Stats: stats, ProcessingTime: time.Since(startTime)}

	log.Debug("Rendered glossary",
		zap.Int("terms", stats.Terms),
		zap.Int("omitted", stats.Omitted),
		zap.Int("categories", stats.Categories),
		zap.Duration("elapsed", result.Stats.ProcessingTime))
	if result.OutputFile != "" {
		log.Info("Wrote glossary", zap.String("output", result.OutputFile))
	}

	return result
}

// write emits the preset boilerplate around the formatted glossary body.
func (r *Renderer) write(w io.Writer, sheet *xlsxparser.Sheet) (glossary.Stats, error) {
	opts := r.cfg.FormatOptions(r.preset)

	if err := r.preset.WriteHeader(w, opts.RefColumns); err != nil {
		return glossary.Stats{}, fmt.Errorf("failed to write header: %w", err)
	}

	stats, err := glossary.Format(w, sheet.Rows, opts)
	if err != nil {
		return stats, err
	}

	if stats.Omitted > 0 {
		r.logger.Debug("Omitted terms", zap.Int("count", stats.Omitted), zap.String("column", opts.Omit))
	}

	if err := r.preset.WriteFooter(w); err != nil {
		return stats, fmt.Errorf("failed to write footer: %w", err)
	}
	return stats, nil
}
