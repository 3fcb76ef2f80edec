// Package memory implements the session cache with an in-process map.
//
// Expiry is checked lazily on access, which matches the Badger-backed
// implementation's observable behavior closely enough for the auth and
// workflow tests that use this store as a double.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/depotlabs/filedepot/pkg/store/session"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemorySessionCache implements session.Cache with a mutex-guarded map.
type MemorySessionCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemorySessionCache creates an empty in-memory session cache.
func NewMemorySessionCache() *MemorySessionCache {
	return &MemorySessionCache{
		entries: make(map[string]entry),
	}
}

// Get returns the value stored under key, or session.ErrNoEntry if the key
// is absent or expired. Expired entries are removed on access.
func (c *MemorySessionCache) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", session.ErrNoEntry
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", session.ErrNoEntry
	}

	return e.value, nil
}

// Set stores value under key with the given time-to-live.
func (c *MemorySessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Del removes the entry under key.
func (c *MemorySessionCache) Del(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Ping always succeeds for the in-memory cache.
func (c *MemorySessionCache) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the in-memory cache.
func (c *MemorySessionCache) Close() error {
	return nil
}
