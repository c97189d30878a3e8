// Package pipeline renders every figure of a performance report.
//
// This package is the single place that turns a [report.Report] into
// artifacts. The CLI and the tests both go through it, so file names,
// defaults and cache behavior stay identical everywhere.
//
// # Architecture
//
// A run has two stages:
//
//  1. Prepare: validate the report and synthesize one ROC curve per class
//  2. Render: draw each requested figure in each requested format
//
// The curves are synthesized once and shared by the ROC figure and the
// dashboard, so the dashboard panels always show exactly what the
// standalone figures show.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	sink := &pipeline.FileSink{Dir: "."}
//	result, err := runner.Execute(ctx, report.TUSCA(), pipeline.Options{Sink: sink.Write})
//	if err != nil {
//	    log.Fatal(err) // files saved before the failure stay in sink.Paths
//	}
//
// Without a Sink the artifacts are only returned in memory; write them later
// with [WriteArtifacts].
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ispi-lubango/tuscaviz/pkg/cache"
	"github.com/ispi-lubango/tuscaviz/pkg/errors"
	"github.com/ispi-lubango/tuscaviz/pkg/roc"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutputDir is where files are written when no directory is given.
	DefaultOutputDir = "."

	// DefaultPrefix starts every output file name.
	DefaultPrefix = "tusca"

	// DefaultScale gives 200 px per inch, sharp on high-density screens.
	DefaultScale = 2.0

	// DefaultPoints is the number of FPR samples per ROC curve.
	DefaultPoints = roc.DefaultPoints

	// MaxScale bounds the canvas size.
	MaxScale = 8.0
)

// Figure names, in render order.
const (
	FigureConfusionMatrix = "confusion_matrix"
	FigureROCCurves       = "roc_curves"
	FigureDashboard       = "dashboard"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// AllFigures lists every figure in the order they are rendered.
var AllFigures = []string{FigureConfusionMatrix, FigureROCCurves, FigureDashboard}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// figureSizes are canvas sizes in pixels at scale 1 (100 px per inch).
var figureSizes = map[string][2]int{
	FigureConfusionMatrix: {1000, 800},
	FigureROCCurves:       {1000, 800},
	FigureDashboard:       {1600, 700},
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run. The zero value renders all figures as
// PNG into the working directory.
type Options struct {
	Formats   []string `json:"formats,omitempty"`
	Figures   []string `json:"figures,omitempty"`
	OutputDir string   `json:"output_dir,omitempty"`
	Prefix    string   `json:"prefix,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Points    int      `json:"points,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger  `json:"-"`
	Sink   ArtifactSink `json:"-"`

	validated bool
}

// Artifact is one rendered file.
type Artifact struct {
	Figure string `json:"figure"`
	Format string `json:"format"`
	Name   string `json:"name"`
	Data   []byte `json:"-"`
	Cached bool   `json:"cached"`
}

// ArtifactSink receives each artifact as soon as it is rendered, before the
// next one starts. A sink error stops the run.
type ArtifactSink func(Artifact) error

// Summary holds the headline numbers of a report.
type Summary struct {
	GlobalAccuracy float64            `json:"global_accuracy"`
	MeanAUC        float64            `json:"mean_auc"`
	Achieved       map[string]float64 `json:"achieved_auc"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PrepareTime time.Duration
	RenderTime  time.Duration
	CacheHits   int
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Artifacts []Artifact
	Summary   Summary
	Stats     Stats
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFigure checks that a figure name is valid.
func ValidateFigure(figure string) error {
	if !slices.Contains(AllFigures, figure) {
		return errors.New(errors.ErrCodeInvalidFigure, "invalid figure: %q (must be one of: %s)", figure, strings.Join(AllFigures, ", "))
	}
	return nil
}

// FileName returns the output file name for a figure and format.
func FileName(prefix, figure, format string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, figure, format)
}

// FigureSize returns the canvas size in pixels of a figure at the given scale.
func FigureSize(figure string, scale float64) (width, height int) {
	s := figureSizes[figure]
	return int(float64(s[0]) * scale), int(float64(s[1]) * scale)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, f := range o.Figures {
		if err := ValidateFigure(f); err != nil {
			return err
		}
	}
	o.Formats = dedupe(o.Formats)
	o.Figures = inRenderOrder(o.Figures)

	if o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidOption, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if o.Points < 2 {
		return errors.New(errors.ErrCodeInvalidOption, "points must be at least 2, got %d", o.Points)
	}
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetDefaults fills empty fields. Explicitly invalid values are left for
// validation to reject.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if len(o.Figures) == 0 {
		o.Figures = slices.Clone(AllFigures)
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Points == 0 {
		o.Points = DefaultPoints
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for one figure and format.
func (o *Options) ArtifactKeyOpts(figure, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Figure: figure,
		Format: format,
		Scale:  o.Scale,
		Points: o.Points,
	}
}

func dedupe(vs []string) []string {
	seen := make(map[string]bool, len(vs))
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func inRenderOrder(figures []string) []string {
	out := make([]string, 0, len(AllFigures))
	for _, f := range AllFigures {
		if slices.Contains(figures, f) {
			out = append(out, f)
		}
	}
	return out
}
