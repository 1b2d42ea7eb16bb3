// Package cache provides the artifact cache used by the render pipeline.
//
// Rendered outputs (SVG, PNG, PDF, JSON, GeoJSON) are cached under a key
// derived from a hash of the computed figure and the render options. Adding a
// shape changes the figure hash, so no cached artifact outlives a change to
// the figure it was rendered from.
//
// The cache lives in process memory only and disappears with the session.
// [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
	// Close releases the cache's resources.
	Close() error
}
