// Package memory implements record.Store with in-process maps.
//
// The memory store mirrors the MongoDB implementation's observable behavior
// (generated hex ids, natural insertion order for listings, the same error
// codes) so that the workflow and auth layers can be tested without a
// running database.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

// MemoryRecordStore implements record.Store with maps guarded by a single
// read-write mutex. Listing order is insertion order.
type MemoryRecordStore struct {
	mu sync.RWMutex

	users       map[string]*record.User // keyed by id
	usersByMail map[string]string       // email -> id

	files     map[string]*record.File // keyed by id
	fileOrder []string                // insertion order of file ids
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		users:       make(map[string]*record.User),
		usersByMail: make(map[string]string),
		files:       make(map[string]*record.File),
	}
}

var (
	errUserNotFound = &record.StoreError{Code: record.ErrNotFound, Message: "user not found"}
	errFileNotFound = &record.StoreError{Code: record.ErrNotFound, Message: "file not found"}
)

// CreateUser inserts a new user, enforcing email uniqueness.
func (s *MemoryRecordStore) CreateUser(ctx context.Context, email, passwordHash string) (*record.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByMail[email]; exists {
		return nil, &record.StoreError{Code: record.ErrAlreadyExists, Message: "Already exist"}
	}

	user := &record.User{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user
	s.usersByMail[email] = user.ID

	copied := *user
	return &copied, nil
}

// FindUserByEmail returns the user registered with the given email.
func (s *MemoryRecordStore) FindUserByEmail(ctx context.Context, email string) (*record.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByMail[email]
	if !ok {
		return nil, errUserNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

// FindUserByID returns the user with the given id.
func (s *MemoryRecordStore) FindUserByID(ctx context.Context, id string) (*record.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	copied := *user
	return &copied, nil
}

// CountUsers returns the total number of registered users.
func (s *MemoryRecordStore) CountUsers(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// InsertFile inserts a file record and returns it with a generated id.
func (s *MemoryRecordStore) InsertFile(ctx context.Context, file *record.File) (*record.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := *file
	inserted.ID = primitive.NewObjectID().Hex()
	s.files[inserted.ID] = &inserted
	s.fileOrder = append(s.fileOrder, inserted.ID)

	copied := inserted
	return &copied, nil
}

// FindFileByID returns the file record with the given id.
func (s *MemoryRecordStore) FindFileByID(ctx context.Context, id string) (*record.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, errFileNotFound
	}
	copied := *file
	return &copied, nil
}

// ListFiles returns one page of records owned by ownerID under parentID in
// insertion order. Pages beyond the data yield an empty slice.
func (s *MemoryRecordStore) ListFiles(ctx context.Context, ownerID, parentID string, page, pageSize int64) ([]record.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []record.File{}
	for _, id := range s.fileOrder {
		file := s.files[id]
		if file.OwnerID == ownerID && file.ParentID == parentID {
			matched = append(matched, *file)
		}
	}

	start := page * pageSize
	if start >= int64(len(matched)) {
		return []record.File{}, nil
	}
	end := start + pageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

// SetFileVisibility patches the visibility flag and returns the updated
// record.
func (s *MemoryRecordStore) SetFileVisibility(ctx context.Context, id string, isPublic bool) (*record.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[id]
	if !ok {
		return nil, errFileNotFound
	}
	file.IsPublic = isPublic

	copied := *file
	return &copied, nil
}

// CountFiles returns the total number of file records.
func (s *MemoryRecordStore) CountFiles(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.files)), nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryRecordStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the in-memory store.
func (s *MemoryRecordStore) Close(ctx context.Context) error {
	return nil
}
