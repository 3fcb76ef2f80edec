// Package payload defines binary payload storage for uploaded files and
// images.
//
// A payload store hands out an opaque storage path on write; the path is
// recorded on the file's metadata record and is the only way back to the
// bytes. Folders never have payloads.
package payload

import (
	"context"
	"errors"
)

// ErrNoPayload is returned by Read when no payload exists at the given
// storage path. Metadata pointing at a missing payload is a consistency
// fault the workflow reports as a plain not-found.
var ErrNoPayload = errors.New("payload store: no payload at path")

// Store persists and retrieves binary payloads.
//
// Implementations must be safe for concurrent use. Two concurrent writes
// never collide because every write gets a freshly generated name.
type Store interface {
	// Write persists data under a freshly generated name and returns the
	// storage path that resolves back to it.
	Write(ctx context.Context, data []byte) (string, error)

	// Read returns the payload stored at path, or ErrNoPayload.
	Read(ctx context.Context, path string) ([]byte, error)
}
