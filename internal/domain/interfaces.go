package domain

import "context"

// ComputeFunc produces an artifact on a cache miss
type ComputeFunc func(ctx context.Context) (*CombinedArtifact, error)

// Store defines the cache-aside store for combined artifacts
type Store interface {
	// GetOrCompute returns the artifact stored under key, or runs compute,
	// stores its result and returns it. compute runs at most once
	// concurrently per key. A failing compute stores nothing.
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (*CombinedArtifact, error)
	// Get returns ErrCacheMiss when nothing is stored under key
	Get(ctx context.Context, key string) (*CombinedArtifact, error)
	// Delete removes a key from the store
	Delete(ctx context.Context, key string) error
	// Close releases store resources
	Close() error
}

// Combiner provides combined theme files and their source maps
type Combiner interface {
	// GetCombinedFile returns the combined artifact for a configured output name
	GetCombinedFile(ctx context.Context, name string) (*CombinedArtifact, error)
	// GetSourceMap returns the source map generated for fingerprint.
	// ok is false when no map exists; that is not an error.
	GetSourceMap(ctx context.Context, fingerprint string) (content string, ok bool, err error)
}
