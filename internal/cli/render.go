package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ispi-lubango/tuscaviz/pkg/pipeline"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

// renderFlags holds the command-line flags of the render (root) command.
type renderFlags struct {
	config    string  // explicit config file path
	outputDir string  // directory for the written files
	formats   string  // comma-separated output formats
	figures   string  // comma-separated figure names
	prefix    string  // file name prefix
	scale     float64 // pixel density multiplier
	points    int     // FPR samples per ROC curve
	noCache   bool    // bypass the render cache
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "config file (default: ./"+configFileName+" if present)")
	fs.StringVarP(&f.outputDir, "output-dir", "o", pipeline.DefaultOutputDir, "directory to write figures to")
	fs.StringVarP(&f.formats, "format", "f", pipeline.FormatPNG, "output format(s): png, svg, pdf, json (comma-separated)")
	fs.StringVar(&f.figures, "figure", "", "figure(s) to render: confusion_matrix, roc_curves, dashboard (default: all)")
	fs.StringVar(&f.prefix, "prefix", pipeline.DefaultPrefix, "file name prefix")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "resolution multiplier (1 = 100 px per inch)")
	fs.IntVar(&f.points, "points", pipeline.DefaultPoints, "samples per ROC curve")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
}

// resolve merges defaults, the config file and explicitly set flags, in
// increasing order of precedence.
func (f *renderFlags) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	cfg, _, err := loadConfig(f.config)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		OutputDir: cfg.OutputDir,
		Formats:   parseList(strings.Join(cfg.Formats, ",")),
		Figures:   parseList(strings.Join(cfg.Figures, ",")),
		Prefix:    cfg.Prefix,
		Scale:     cfg.Scale,
		Points:    cfg.Points,
	}
	if !f.noCache && !cmd.Flags().Changed("no-cache") {
		f.noCache = cfg.NoCache
	}

	changed := cmd.Flags().Changed
	if changed("output-dir") {
		opts.OutputDir = f.outputDir
	}
	if changed("format") {
		opts.Formats = parseList(f.formats)
	}
	if changed("figure") {
		opts.Figures = parseList(f.figures)
	}
	if changed("prefix") {
		opts.Prefix = f.prefix
	}
	if changed("scale") {
		opts.Scale = f.scale
		if opts.Scale == 0 {
			opts.Scale = -1 // an explicit 0 is invalid, not "default"
		}
	}
	if changed("points") {
		opts.Points = f.points
		if opts.Points == 0 {
			opts.Points = -1
		}
	}
	return opts, nil
}

// runRender renders the TUSCA report and writes the files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])
	ctx = withLogger(ctx, logger)

	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	rep := report.TUSCA()
	printBanner(rep)

	runner := c.newRunner(logger, noCache)
	defer runner.Close()

	sink := &pipeline.FileSink{Dir: opts.OutputDir}
	opts.Sink = sink.Write

	prog := newProgress(logger)
	var spin *Spinner
	if logger.GetLevel() > LogDebug {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Rendering figures...")
		spin.Start()
	}
	result, err := runner.Execute(ctx, rep, opts)
	if err != nil {
		if spin != nil {
			spin.StopWithError("Rendering failed")
		}
		if n := len(sink.Paths); n > 0 {
			logger.Warn("run stopped early", "kept", n)
		}
		return err
	}
	if spin != nil {
		spin.Stop()
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(sink.Paths)))

	printResult(opts.Figures, result, sink.Paths)
	return nil
}
