// Package badger implements the session cache on BadgerDB.
//
// BadgerDB entries carry a native TTL, which maps one-to-one onto the
// cache's expiry contract: an expired key simply stops existing. The store
// persists across restarts, so issued tokens survive a process bounce.
package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/store/session"
)

// BadgerSessionCache implements session.Cache using BadgerDB for persistence.
//
// Thread Safety: BadgerDB transactions provide isolation; the cache adds no
// state of its own.
type BadgerSessionCache struct {
	db *badger.DB
}

// BadgerSessionCacheConfig contains configuration for the Badger-backed
// session cache.
type BadgerSessionCacheConfig struct {
	// Path is the directory where BadgerDB stores its files.
	Path string `mapstructure:"path"`

	// InMemory runs BadgerDB without touching disk. Sessions then die with
	// the process, which is acceptable for development setups.
	InMemory bool `mapstructure:"in_memory"`
}

// NewBadgerSessionCache opens (or creates) the BadgerDB database backing the
// session cache.
//
// The returned cache is ready for concurrent use. Callers own the lifecycle
// and must Close it on shutdown.
func NewBadgerSessionCache(ctx context.Context, config BadgerSessionCacheConfig) (*BadgerSessionCache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var opts badger.Options
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(config.Path)
	}
	// Session entries are tiny and short-lived; keep Badger quiet.
	opts = opts.WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session cache at %s: %w", config.Path, err)
	}

	logger.Info("Session cache opened (path=%q in_memory=%v)", config.Path, config.InMemory)

	return &BadgerSessionCache{db: db}, nil
}

// Get returns the value stored under key. Badger hides entries past their
// TTL, so expired sessions surface as ErrNoEntry without any sweeping.
func (c *BadgerSessionCache) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", session.ErrNoEntry
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session entry: %w", err)
	}

	return value, nil
}

// Set stores value under key with the given time-to-live.
func (c *BadgerSessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), []byte(value)).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to write session entry: %w", err)
	}

	return nil
}

// Del removes the entry under key.
func (c *BadgerSessionCache) Del(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete session entry: %w", err)
	}

	return nil
}

// Ping reports whether the underlying database is still open.
func (c *BadgerSessionCache) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.db.IsClosed() {
		return fmt.Errorf("session cache is closed")
	}
	return nil
}

// Close closes the BadgerDB database. The cache must not be used afterwards.
func (c *BadgerSessionCache) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("failed to close session cache: %w", err)
	}
	return nil
}
