// Package cache stores rendered diagram artifacts between runs.
//
// Rendering is deterministic: the same DOT source in the same format always
// yields the same bytes. Artifacts are therefore keyed by a hash of the DOT
// source and the format, so an identical re-invocation can skip Graphviz.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey(dot, "png")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
//
// [NullCache] disables caching (--no-cache).
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a rendered artifact is reused.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKey returns the cache key for dot rendered as format.
func ArtifactKey(dot, format string) string {
	return hashKey("artifact", format, dot)
}
