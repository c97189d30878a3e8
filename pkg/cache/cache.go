// Package cache stores rendered figures between runs.
//
// Rendering is deterministic, so an artifact is fully identified by the
// report it was drawn from, the figure, the output format and the render
// options. [Keyer] turns those into a string key; [Cache] stores bytes under
// it. The CLI uses [FileCache] under the user cache directory and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid. Zero means no
// expiry; artifacts only change when the inputs (and therefore the key) do.
const TTLArtifact time.Duration = 0

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render settings that influence an artifact's bytes.
type ArtifactKeyOpts struct {
	Figure string  `json:"figure"`
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	Points int     `json:"points"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered figure of a report.
	ArtifactKey(reportHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the report hash together with the options.
func (DefaultKeyer) ArtifactKey(reportHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", reportHash, opts)
}
