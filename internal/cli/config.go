package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
)

// fileConfig mirrors the render flags. Every field is optional; zero values
// leave the pipeline default in place.
type fileConfig struct {
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	Figures   []string `toml:"figures"`
	Prefix    string   `toml:"prefix"`
	Scale     float64  `toml:"scale"`
	Points    int      `toml:"points"`
	NoCache   bool     `toml:"no_cache"`
}

// loadConfig reads a TOML config. With an empty path it looks for
// tuscaviz.toml in the working directory and returns a zero config if there
// is none; an explicit path must exist. It returns the path actually read.
func loadConfig(path string) (fileConfig, string, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, "", errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}
