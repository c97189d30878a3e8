package pipeline

import (
	"os"
	"path/filepath"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
)

// WriteArtifact writes a to dir under its Name, overwriting an existing
// file, and returns the path.
func WriteArtifact(dir string, a Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeWrite, err, "create %s", dir)
	}
	path := filepath.Join(dir, a.Name)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	return path, nil
}

// WriteArtifacts writes each artifact to dir. It returns the written paths
// in artifact order, up to the first failure.
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path, err := WriteArtifact(dir, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileSink saves artifacts into Dir as they are rendered.
type FileSink struct {
	Dir   string
	Paths []string // written so far, in order
}

// Write is an ArtifactSink.
func (s *FileSink) Write(a Artifact) error {
	path, err := WriteArtifact(s.Dir, a)
	if err != nil {
		return err
	}
	s.Paths = append(s.Paths, path)
	return nil
}
