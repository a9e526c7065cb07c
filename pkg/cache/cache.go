// Package cache stores rendered poster artifacts between runs.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, sharded by key hash
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// A [Keyer] builds keys from the hash of everything a poster depends on plus
// the output options. [NewScopedKeyer] prefixes every key, which the CLI uses
// to keep artifacts from different releases apart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour
