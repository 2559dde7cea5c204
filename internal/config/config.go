// =============================================================================
// Glossary Formatter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the glossary layout configuration.
// The configuration describes the spreadsheet (which sheet, which columns)
// and where the output goes. The formatting strings themselves come from the
// selected preset.
//
// EXAMPLE (glossary.yaml):
//
//   sheet: Sheet1
//   last_column: 0
//   columns:
//     term: Term
//     definition: Definition
//     category: Category
//     sub_category: Sub-category
//   omit:
//     column: Omit
//     indicator: Y
//   references:
//     columns: [Piece 1, Piece 2]
//     indicators: [Y]
//   output: ""
//   log_level: info
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/glossary-formatter/internal/glossary"
	"github.com/ginjaninja78/glossary-formatter/internal/presets"
	"github.com/ginjaninja78/glossary-formatter/internal/xlsxparser"
	"github.com/ginjaninja78/glossary-formatter/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultFile is picked up from the working directory when no --config flag
// is given.
const DefaultFile = "glossary.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the glossary layout and output settings.
type Config struct {
	// Sheet is the worksheet holding the glossary.
	// An empty value selects the first sheet.
	// Default: "Sheet1"
	Sheet string `yaml:"sheet"`

	// LastColumn limits reading to the first N columns.
	// Default: 0 (read every header column)
	LastColumn int `yaml:"last_column"`

	// Columns names the glossary columns.
	Columns ColumnConfig `yaml:"columns"`

	// Omit configures the optional column marking terms to leave out.
	Omit OmitConfig `yaml:"omit"`

	// References configures the reference indicator columns.
	References ReferenceConfig `yaml:"references"`

	// Output is the output file pattern. Empty writes to stdout.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}, {preset}, {original}
	Output string `yaml:"output"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// ColumnConfig names the spreadsheet columns.
type ColumnConfig struct {
	// Term is the header of the column containing terms.
	// Default: "Term"
	Term string `yaml:"term"`

	// Definition is the header of the column containing definitions.
	// Default: "Definition"
	Definition string `yaml:"definition"`

	// Category is the header of the column containing categories.
	// Default: "Category"
	Category string `yaml:"category"`

	// SubCategory is the header of the column containing sub-categories.
	// An empty value disables sub-category headings.
	// Default: "Sub-category"
	SubCategory string `yaml:"sub_category"`
}

// OmitConfig configures term omission.
type OmitConfig struct {
	// Column is the header of the omit column. Empty disables omission.
	Column string `yaml:"column"`

	// Indicator is the cell value marking a term to omit.
	// Default: "Y" when Column is set
	Indicator string `yaml:"indicator"`
}

// ReferenceConfig configures the reference columns.
type ReferenceConfig struct {
	// Columns are the headers of the reference columns, in legend order.
	// Default: ["Piece 1", "Piece 2"]
	Columns []string `yaml:"columns"`

	// Indicators are the cell values marking a reference.
	// Default: ["Y"]
	Indicators []string `yaml:"indicators"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := seeded()
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := seeded()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Resolve returns the configuration for the --config flag value. An empty
// path falls back to DefaultFile when it exists, and to Default otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if utils.FileExists(DefaultFile) {
		return Load(DefaultFile)
	}
	return Default(), nil
}

// seeded returns a Config holding the defaults that an explicit empty value
// in the file may override: `sheet: ""` selects the first sheet and
// `sub_category: ""` disables sub-category headings.
func seeded() *Config {
	return &Config{
		Sheet: "Sheet1",
		Columns: ColumnConfig{
			SubCategory: "Sub-category",
		},
	}
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Columns.Term == "" {
		cfg.Columns.Term = "Term"
	}
	if cfg.Columns.Definition == "" {
		cfg.Columns.Definition = "Definition"
	}
	if cfg.Columns.Category == "" {
		cfg.Columns.Category = "Category"
	}
	if cfg.Omit.Column != "" && cfg.Omit.Indicator == "" {
		cfg.Omit.Indicator = "Y"
	}
	if cfg.References.Columns == nil {
		cfg.References.Columns = []string{"Piece 1", "Piece 2"}
	}
	if len(cfg.References.Indicators) == 0 {
		cfg.References.Indicators = []string{"Y"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks the configuration for values the loader cannot use.
func (c *Config) Validate() error {
	var errs []error

	if c.LastColumn < 0 {
		errs = append(errs, fmt.Errorf("last_column must not be negative, got %d", c.LastColumn))
	}
	if strings.TrimSpace(c.Columns.Term) == "" {
		errs = append(errs, errors.New("columns.term must not be empty"))
	}
	if strings.TrimSpace(c.Columns.Definition) == "" {
		errs = append(errs, errors.New("columns.definition must not be empty"))
	}
	if strings.TrimSpace(c.Columns.Category) == "" {
		errs = append(errs, errors.New("columns.category must not be empty"))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}

	return errors.Join(errs...)
}

// =============================================================================
// OPTION TRANSLATION
// =============================================================================

// LoadOptions returns the loader options for this configuration.
func (c *Config) LoadOptions() xlsxparser.LoadOptions {
	return xlsxparser.LoadOptions{
		Sheet:      c.Sheet,
		LastColumn: c.LastColumn,
		TermColumn: c.Columns.Term,
	}
}

// FormatOptions combines this configuration with a preset's fragments.
// Reference columns are only passed on when the preset prints references.
func (c *Config) FormatOptions(p presets.Preset) glossary.Options {
	opts := glossary.Options{
		Columns: glossary.Columns{
			Term:        c.Columns.Term,
			Definition:  c.Columns.Definition,
			Category:    c.Columns.Category,
			SubCategory: c.Columns.SubCategory,
			Omit:        c.Omit.Column,
		},
		Fragments:     p.Fragments,
		OmitIndicator: c.Omit.Indicator,
		RefIndicators: c.References.Indicators,
	}
	if p.References {
		opts.RefColumns = c.References.Columns
	}
	return opts
}
