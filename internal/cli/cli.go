// Package cli implements the tuscaviz command-line interface.
//
// Invoked without a subcommand, tuscaviz renders every figure of the TUSCA
// performance report into the working directory and prints a short summary.
// Flags and an optional tuscaviz.toml select formats, figures, scale and
// the output location.
//
// # Commands
//
//   - (root): render figures
//   - cache: inspect or clear the render cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables debug
// output. Console status lines go to stdout.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ispi-lubango/tuscaviz/pkg/buildinfo"
	"github.com/ispi-lubango/tuscaviz/pkg/cache"
	"github.com/ispi-lubango/tuscaviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tuscaviz"

	// configFileName is looked up in the working directory when --config is not given.
	configFileName = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders the figures.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		flags   renderFlags
		verbose bool
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Render TUSCA classifier performance figures",
		Long: `tuscaviz renders the TUSCA cough classifier's performance report as a
confusion matrix heatmap, ROC curves and a combined dashboard.

With no flags it writes tusca_confusion_matrix.png, tusca_roc_curves.png and
tusca_dashboard.png to the current directory.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.noCache)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.register(root)

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(logger, noCache), nil, logger)
}

// newCache opens the file cache. Caching is optional, so any failure to
// locate or create the directory falls back to a NullCache.
func newCache(logger *log.Logger, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tuscaviz/).
func cacheDir() (string, error) {
	return cache.DefaultDir(appName)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseList splits a comma-separated flag value, trimming blanks.
// An empty string yields nil so that pipeline defaults apply.
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
