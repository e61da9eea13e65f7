// Package cache provides the storage layer for generated wrapped snapshots.
//
// A [Cache] stores opaque byte slices under string keys with a time-to-live.
// Several backends are available:
//
//   - [FileCache]: one JSON file per entry under the XDG cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance, suited to the HTTP server
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: stores nothing, used with --no-cache
//
// Keys are produced by a [Keyer] so that every component agrees on naming.
// Usernames are lowercased before they become part of a key, which means
// "Torvalds" and "torvalds" share one entry.
package cache

import (
	"context"
	"errors"
	"time"
)

// Default time-to-live values for cached data.
const (
	// TTLWrapped is the freshness window for a generated wrapped snapshot.
	TTLWrapped = 24 * time.Hour

	// TTLTrending is the freshness window for the trending repositories list.
	TTLTrending = time.Hour
)

// Sentinel errors for caching operations.
var (
	// ErrUnknownBackend is returned by [Open] for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")
)

// Cache is the storage interface shared by all backends.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true on a fresh hit.
	// Misses and expired entries return (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Clear removes all entries from c if the backend supports it.
// Backends without [Clearer] report zero removed entries.
func Clear(ctx context.Context, c Cache) (int, error) {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return 0, nil
}
