// Package cache stores rendered diagrams keyed by the hash of their model.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [MemoryCache]: process-local map with TTL expiry
//   - [FileCache]: one JSON entry per key under a directory, for the CLI
//   - [RedisCache]: shared cache for multiple render service instances
//
// All backends are safe for concurrent use. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures, and callers
// are expected to treat them as misses.
//
// # Keys
//
// A [Keyer] derives keys from the model hash and the output options:
//
//	data, _ := diagram.MarshalGraph(g)
//	key := keyer.DiagramKey(cache.Hash(data), cache.DiagramKeyOpts{Output: "markdown"})
//
// [ScopedKeyer] prefixes every key, e.g. per tenant of a shared redis.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the value under key. A missing or expired entry is a
	// miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered diagrams are kept when no TTL is
// configured.
const DefaultTTL = 7 * 24 * time.Hour

// NullCache disables caching: every lookup misses and writes are dropped.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
