// Package cache provides the run cache for the fake data generator.
//
// A run is keyed by the SHA-256 hash of its resolved configuration (every
// flag and config-file value that affects the generated output, including
// the random seed). Re-running the generator with an identical configuration
// is a cache hit: the DOT and TSV artifacts from the previous run are
// returned unchanged instead of being recomputed.
//
// Two backends are provided: FileCache, which stores entries under a
// directory on disk, and RedisCache, which stores entries in a Redis
// instance for sharing across machines. NullCache disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores and retrieves run artifacts by key.
type Cache interface {
	// Get retrieves the value for key. The bool return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key, if present.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
