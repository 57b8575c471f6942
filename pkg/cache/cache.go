// Package cache stores rendered diagram artifacts.
//
// Rendering is deterministic: the same description and render options
// always produce the same bytes. The pipeline hashes the description,
// derives a key with a [Keyer] and keeps the result in a [Cache].
//
// Backends:
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP service
//   - [NullCache]: never stores anything
//
// All implementations are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// ArtifactTTL applies to rendered outputs (svg, png, pdf, json, dot).
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte store with expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
