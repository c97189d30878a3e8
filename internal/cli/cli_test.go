package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
	"github.com/ispi-lubango/tuscaviz/pkg/pipeline"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty uses defaults", "", nil},
		{"single", "png", []string{"png"}},
		{"multiple", "png,svg,pdf", []string{"png", "svg", "pdf"}},
		{"spaces and blanks", " png , ,svg ", []string{"png", "svg"}},
		{"case folded", "PNG,Dashboard", []string{"png", "dashboard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseList(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("missing subcommand %q", name)
		}
	}
	for _, flag := range []string{"output-dir", "format", "figure", "scale", "points", "prefix", "no-cache", "config"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("missing flag --%s", flag)
		}
	}
}

func TestRootCommandRenders(t *testing.T) {
	testChdir(t, t.TempDir())
	out := t.TempDir()

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"-o", out, "--scale", "0.5", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, figure := range pipeline.AllFigures {
		name := pipeline.FileName(pipeline.DefaultPrefix, figure, pipeline.FormatPNG)
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !bytes.Contains(logs.Bytes(), []byte("run=")) {
		t.Errorf("logs should carry a run id, got %q", logs.String())
	}
}

func TestRootCommandInvalidFormat(t *testing.T) {
	testChdir(t, t.TempDir())

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"-f", "gif", "--no-cache"})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestResolvePrecedence(t *testing.T) {
	testChdir(t, t.TempDir())
	writeFile(t, configFileName, `
prefix = "fromfile"
scale = 1.5
formats = ["svg"]
output_dir = "file-out"
`)

	tests := []struct {
		name      string
		args      []string
		prefix    string
		scale     float64
		formats   []string
		outputDir string
	}{
		{"file only", nil, "fromfile", 1.5, []string{"svg"}, "file-out"},
		{"flag wins", []string{"--prefix", "flag", "-f", "png,json"}, "flag", 1.5, []string{"png", "json"}, "file-out"},
		{"flag scale", []string{"--scale", "3"}, "fromfile", 3, []string{"svg"}, "file-out"},
		{"flag dir", []string{"-o", "cli-out"}, "fromfile", 1.5, []string{"svg"}, "cli-out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags renderFlags
			cmd := &cobra.Command{Use: "test"}
			flags.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			opts, err := flags.resolve(cmd)
			if err != nil {
				t.Fatal(err)
			}
			if opts.Prefix != tt.prefix || opts.Scale != tt.scale || opts.OutputDir != tt.outputDir {
				t.Errorf("opts = prefix %q scale %v dir %q", opts.Prefix, opts.Scale, opts.OutputDir)
			}
			if !slices.Equal(opts.Formats, tt.formats) {
				t.Errorf("formats = %v, want %v", opts.Formats, tt.formats)
			}
		})
	}
}

func TestResolveExplicitZeroScale(t *testing.T) {
	testChdir(t, t.TempDir())

	var flags renderFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	if err := cmd.ParseFlags([]string{"--scale", "0"}); err != nil {
		t.Fatal(err)
	}
	opts, err := flags.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("--scale 0 should be rejected, got %v", err)
	}
}

func TestFormatMetrics(t *testing.T) {
	if got := formatAccuracy(92.25); got != "92.25%" {
		t.Errorf("formatAccuracy = %q", got)
	}
	if got := formatAUC(0.96); got != "0.960" {
		t.Errorf("formatAUC = %q", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatal(err)
			}
			if !bytes.Contains(out.Bytes(), []byte(appName)) {
				t.Errorf("%s completion should mention %s", shell, appName)
			}
		})
	}
}

// testChdir changes the working directory to dir for the duration of the
// test, restoring the previous one on cleanup (equivalent of Go 1.24's
// t.Chdir for older toolchains).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
