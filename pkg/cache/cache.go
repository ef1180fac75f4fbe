// Package cache provides a small byte cache used to memoize expensive
// decoding work between fractionbom invocations, most notably parsed project
// files keyed by content hash.
//
// Two implementations are provided: [FileCache] persists entries under a
// directory (the CLI points it at the user cache dir), and [NullCache]
// disables caching entirely for tests and --no-cache runs.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("not found")

// Cache stores opaque byte values under string keys. A zero TTL means the
// entry never expires; content-hashed keys rely on this.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
