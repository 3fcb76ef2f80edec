// Package session defines the expiring key-value cache that backs
// token-to-identity resolution.
//
// The cache is a plain string store with per-key expiry. The session manager
// is its only writer; keys disappear on their own at expiry or through an
// explicit Del. Nothing else in the system touches it.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoEntry is returned by Get when the key is absent or has expired. The
// two cases are indistinguishable on purpose.
var ErrNoEntry = errors.New("session cache: no such entry")

// Cache is an expiring key-value store.
//
// Implementations must be safe for concurrent use and must never return an
// expired value.
type Cache interface {
	// Get returns the value stored under key, or ErrNoEntry.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Del removes the entry under key. Deleting an absent key is not an
	// error; callers that care check with Get first.
	Del(ctx context.Context, key string) error

	// Ping probes cache liveness.
	Ping(ctx context.Context) error

	// Close releases the cache's resources.
	Close() error
}
