// Package cache stores short-lived lookups such as zone resolution results.
// Entries expire after a TTL and can be dropped explicitly when the source
// data changes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiry
type Cache interface {
	// Get returns the value and whether it was present and unexpired
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	// InvalidatePrefix drops every key starting with prefix
	InvalidatePrefix(ctx context.Context, prefix string) error
}
