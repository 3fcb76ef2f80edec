// Package record defines the persistent domain records of filedepot and the
// store interface that backs them.
//
// Two collections exist: users (identity, one-way password hash) and files
// (metadata for folders and stored files/images). The store is deliberately
// narrow: point lookups, single-document inserts and patches, counts, and a
// paged listing. Anything richer belongs in the workflow layer.
package record

import (
	"context"
	"time"
)

// RootParentID is the sentinel parent reference for top-level file records.
// It is stored verbatim, so listings for the root match on this value.
const RootParentID = "0"

// Kind is the type of a file record.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// Valid reports whether k is one of the three supported record kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// User is a registered identity. Users are created at registration and never
// mutated or deleted afterwards.
type User struct {
	// ID is the store-generated identifier, exposed as a hex string.
	ID string `json:"id"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is a salted bcrypt hash. It never leaves the service.
	PasswordHash string `json:"-"`
}

// File is the metadata record for a folder, file, or image.
//
// Non-folder records carry a StoragePath resolving to the binary payload in
// the payload store. The visibility flag only affects read authorization;
// ownership is fixed at creation.
type File struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userId"`
	Name        string    `json:"name"`
	Kind        Kind      `json:"type"`
	ParentID    string    `json:"parentId"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	StoragePath string    `json:"-"`
}

// Store is the credential store: users and file metadata.
//
// Implementations must be safe for concurrent use. Lookup misses are reported
// as *StoreError with ErrNotFound; a malformed id is indistinguishable from a
// missing record (the service masks both the same way).
type Store interface {
	// CreateUser inserts a new user and returns it with its generated ID.
	// Fails with ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)

	// FindUserByEmail returns the user registered with the given email.
	FindUserByEmail(ctx context.Context, email string) (*User, error)

	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, id string) (*User, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)

	// InsertFile inserts a file record and returns it with its generated ID.
	InsertFile(ctx context.Context, file *File) (*File, error)

	// FindFileByID returns the file record with the given id.
	FindFileByID(ctx context.Context, id string) (*File, error)

	// ListFiles returns the page-th fixed-size page of records owned by
	// ownerID whose parent matches parentID, in the store's natural order.
	// Pages beyond the data yield an empty slice, not an error.
	ListFiles(ctx context.Context, ownerID, parentID string, page, pageSize int64) ([]File, error)

	// SetFileVisibility patches the visibility flag of the record with the
	// given id and returns the updated record.
	SetFileVisibility(ctx context.Context, id string, isPublic bool) (*File, error)

	// CountFiles returns the total number of file records.
	CountFiles(ctx context.Context) (int64, error)

	// Ping probes store liveness.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close(ctx context.Context) error
}
