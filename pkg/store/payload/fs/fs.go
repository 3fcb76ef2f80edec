// Package fs implements payload storage on the local filesystem.
//
// Payloads are written under a configured root directory with random UUID
// filenames. The root is created on first use, so a fresh deployment needs
// no provisioning step.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/depotlabs/filedepot/pkg/store/payload"
)

// FSPayloadStore implements payload.Store using the local filesystem.
//
// Thread Safety: every write targets a unique filename, so concurrent
// writes never touch the same file. Reads are safe at the OS level.
type FSPayloadStore struct {
	root string
}

// NewFSPayloadStore creates a filesystem payload store rooted at root. The
// directory itself is created lazily on the first write.
func NewFSPayloadStore(root string) *FSPayloadStore {
	return &FSPayloadStore{root: root}
}

// Write persists data under a random UUID filename inside the root
// directory, creating the directory if it does not exist yet, and returns
// the absolute path of the new file.
func (s *FSPayloadStore) Write(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		if err := os.MkdirAll(s.root, 0755); err != nil {
			return "", fmt.Errorf("failed to create payload root %s: %w", s.root, err)
		}
	}

	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write payload: %w", err)
	}

	return path, nil
}

// Read returns the payload stored at path.
func (s *FSPayloadStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, payload.ErrNoPayload
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return data, nil
}
