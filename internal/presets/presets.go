// =============================================================================
// Glossary Formatter - Output Presets
// =============================================================================
//
// A preset is a fixed set of formatting fragments for the shared formatter
// plus the boilerplate written around the glossary body:
//
//   Header
//   Legend item 1          (only for presets that print references)
//   Legend separator
//   Legend item 2
//   BeforeTerms
//   ...glossary body...
//   Footer
//
// BUILT-IN PRESETS:
//   - minimal  : plain text, category names and "term - definition" lines
//   - markdown : headings and bulleted, bold terms
//   - latex    : a complete LaTeX article with reference superscripts
//
// Custom presets can be loaded from YAML with LoadTemplate.
//
// =============================================================================

package presets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/glossary-formatter/internal/glossary"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by Lookup for a name with no built-in preset.
var ErrUnknownPreset = errors.New("unknown preset")

// =============================================================================
// PRESET STRUCTURE
// =============================================================================

// Preset describes one output dialect.
type Preset struct {
	// Name identifies the preset on the command line.
	Name string `yaml:"name"`

	// Description is shown in help output.
	Description string `yaml:"description"`

	// Extension is appended to output file names that have none.
	Extension string `yaml:"extension"`

	// References enables reference numbers after each term and the legend.
	References bool `yaml:"references"`

	// Header is written before everything else.
	Header string `yaml:"header"`

	// LegendItem is written once per reference column. "{n}" is replaced by
	// the reference number and "{name}" by the column header.
	LegendItem string `yaml:"legend_item"`

	// LegendSeparator is written between legend items.
	LegendSeparator string `yaml:"legend_separator"`

	// BeforeTerms is written after the legend, before the first category.
	BeforeTerms string `yaml:"before_terms"`

	// Footer is written after the glossary body.
	Footer string `yaml:"footer"`

	// Fragments are passed to the formatter.
	glossary.Fragments `yaml:",inline"`
}

// =============================================================================
// BUILT-IN PRESETS
// =============================================================================

// Minimal returns the plain text preset.
func Minimal() Preset {
	return Preset{
		Name:        "minimal",
		Description: "Plain text with minimal formatting",
		Extension:   ".txt",
		Header:      "GLOSSARY\n========\n",
		Fragments:   glossary.DefaultFragments(),
	}
}

// Markdown returns the Markdown preset.
func Markdown() Preset {
	f := glossary.DefaultFragments()
	f.CatPrefix = "## "
	f.CatSuffix = "\n"
	f.SubcatPrefix = "### "
	f.SubcatSuffix = "\n"
	f.TermPrefix = "* **"
	f.TermSuffix = "**"

	return Preset{
		Name:        "markdown",
		Description: "Markdown with headings and bulleted terms",
		Extension:   ".md",
		Header:      "# Glossary\n",
		Fragments:   f,
	}
}

// LaTeX returns the LaTeX article preset.
func LaTeX() Preset {
	f := glossary.DefaultFragments()
	f.CatPrefix = `\subsection{`
	f.CatSuffix = "}\n"
	f.SubcatPrefix = `\subsubsection{`
	f.SubcatSuffix = "}\n"
	f.BeginTerms = "\\begin{itemize}\n\\tightlist\n"
	f.EndTerms = "\n\\end{itemize}\n\n\\separator\n"
	f.TermPrefix = `\term{`
	f.TermSuffix = "}"
	f.DefPrefix = `\definition{`
	f.DefSuffix = "}"
	f.RefsPrefix = `\refs{`
	f.RefsSeparator = ","
	f.RefsSuffix = "}"

	return Preset{
		Name:            "latex",
		Description:     "LaTeX article source with reference superscripts",
		Extension:       ".tex",
		References:      true,
		Header:          latexPreamble,
		LegendItem:      `\textsuperscript{{n}} {name}`,
		LegendSeparator: `\\[3pt]`,
		BeforeTerms:     "\n\\vspace{9pt}\n\\separator\n\n\\begin{multicols}{2}\n",
		Footer:          "\\end{multicols}\n\n\\end{document}",
		Fragments:       f,
	}
}

const latexPreamble = `\documentclass[10pt,a4paper]{article}

\usepackage[margin=2cm]{geometry}
\usepackage{charter}
\usepackage{microtype}
\usepackage{multicol}
\usepackage{titlesec}
\usepackage{enumitem}

\setlength\parindent{0pt}
\setlength\parskip{6pt plus 2pt minus 1pt}
\setlength\columnsep{1cm}
\setlist[itemize]{leftmargin=*}
\providecommand\tightlist{
    \setlength{\itemsep}{6pt plus 3pt minus 3pt}
    \setlength{\parskip}{0pt}}

\titlespacing\section{0pt}{12pt}{0pt}
\titlespacing\subsection{0pt}{6pt}{3pt}
\titlespacing\subsubsection{0pt}{6pt}{3pt}
\setcounter{secnumdepth}{0}

\newcommand\term[1]{\item \textbf{#1}}
\newcommand\definition[1]{ -- #1}
\newcommand\refs[1]{\textsuperscript{ (#1)}}
\newcommand\separator{\vspace{6pt}\hrule}

\begin{document}

\section{Glossary}
`

// builtins maps every accepted name to its preset constructor.
var builtins = map[string]func() Preset{
	"minimal":  Minimal,
	"text":     Minimal,
	"markdown": Markdown,
	"md":       Markdown,
	"latex":    LaTeX,
	"tex":      LaTeX,
}

// Lookup returns the built-in preset registered under name.
func Lookup(name string) (Preset, error) {
	ctor, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names returns the canonical names of the built-in presets.
func Names() []string {
	seen := map[string]bool{}
	for _, ctor := range builtins {
		seen[ctor().Name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// CUSTOM TEMPLATES
// =============================================================================

// LoadTemplate reads a custom preset from a YAML file. Fields missing from
// the file keep the values of the minimal preset; unknown fields are an error.
//
// EXAMPLE:
//
//	name: html
//	extension: .html
//	header: "<h1>Glossary</h1>"
//	cat_prefix: "<h2>"
//	cat_suffix: "</h2>"
//	begin_terms: "<dl>"
//	end_terms: "</dl>"
//	term_prefix: "<dt>"
//	term_suffix: "</dt>"
//	def_prefix: "<dd>"
//	def_suffix: "</dd>"
func LoadTemplate(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to read template file: %w", err)
	}

	preset := Minimal()
	preset.Name = "custom"
	preset.Description = "Custom template " + path
	preset.Header = ""

	// Unknown keys are rejected so a misspelled fragment is not silently dropped.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&preset); err != nil && !errors.Is(err, io.EOF) {
		return Preset{}, fmt.Errorf("failed to parse template file: %w", err)
	}

	return preset, nil
}

// =============================================================================
// BOILERPLATE
// =============================================================================

// WriteHeader writes the header, the reference legend and the text before
// the glossary body. refCols lists the reference column headers.
func (p Preset) WriteHeader(w io.Writer, refCols []string) error {
	if err := writeLine(w, p.Header); err != nil {
		return err
	}

	if p.References && p.LegendItem != "" {
		for i, name := range refCols {
			item := strings.NewReplacer("{n}", strconv.Itoa(i+1), "{name}", name).Replace(p.LegendItem)
			if err := writeLine(w, item); err != nil {
				return err
			}
			if i != len(refCols)-1 {
				if err := writeLine(w, p.LegendSeparator); err != nil {
					return err
				}
			}
		}
	}

	return writeLine(w, p.BeforeTerms)
}

// WriteFooter writes the text after the glossary body.
func (p Preset) WriteFooter(w io.Writer) error {
	return writeLine(w, p.Footer)
}

// writeLine writes s and a newline. Empty strings are skipped.
func writeLine(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
