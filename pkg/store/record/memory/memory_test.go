package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

func TestMemoryRecordStoreUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndFind", func(t *testing.T) {
		store := NewMemoryRecordStore()

		created, err := store.CreateUser(ctx, "bob@example.com", "hash")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		byEmail, err := store.FindUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		byID, err := store.FindUserByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", byID.Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		store := NewMemoryRecordStore()

		_, err := store.CreateUser(ctx, "bob@example.com", "hash")
		require.NoError(t, err)

		_, err = store.CreateUser(ctx, "bob@example.com", "other-hash")
		assert.True(t, record.IsAlreadyExists(err))
	})

	t.Run("LookupMisses", func(t *testing.T) {
		store := NewMemoryRecordStore()

		_, err := store.FindUserByEmail(ctx, "nobody@example.com")
		assert.True(t, record.IsNotFound(err))

		_, err = store.FindUserByID(ctx, "ffffffffffffffffffffffff")
		assert.True(t, record.IsNotFound(err))
	})

	t.Run("Count", func(t *testing.T) {
		store := NewMemoryRecordStore()

		for i := 0; i < 3; i++ {
			_, err := store.CreateUser(ctx, fmt.Sprintf("user%d@example.com", i), "hash")
			require.NoError(t, err)
		}

		count, err := store.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestMemoryRecordStoreFiles(t *testing.T) {
	ctx := context.Background()

	newFile := func(owner, parent, name string) *record.File {
		return &record.File{
			OwnerID:  owner,
			Name:     name,
			Kind:     record.KindFile,
			ParentID: parent,
		}
	}

	t.Run("InsertGeneratesID", func(t *testing.T) {
		store := NewMemoryRecordStore()

		inserted, err := store.InsertFile(ctx, newFile("u1", record.RootParentID, "a.txt"))
		require.NoError(t, err)
		require.NotEmpty(t, inserted.ID)

		found, err := store.FindFileByID(ctx, inserted.ID)
		require.NoError(t, err)
		assert.Equal(t, "a.txt", found.Name)
	})

	t.Run("ListInsertionOrderAndPaging", func(t *testing.T) {
		store := NewMemoryRecordStore()

		for i := 0; i < 5; i++ {
			_, err := store.InsertFile(ctx, newFile("u1", record.RootParentID, fmt.Sprintf("f%d", i)))
			require.NoError(t, err)
		}

		page, err := store.ListFiles(ctx, "u1", record.RootParentID, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "f0", page[0].Name)
		assert.Equal(t, "f1", page[1].Name)

		last, err := store.ListFiles(ctx, "u1", record.RootParentID, 2, 2)
		require.NoError(t, err)
		require.Len(t, last, 1)
		assert.Equal(t, "f4", last[0].Name)

		beyond, err := store.ListFiles(ctx, "u1", record.RootParentID, 3, 2)
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})

	t.Run("ListFiltersOwnerAndParent", func(t *testing.T) {
		store := NewMemoryRecordStore()

		_, err := store.InsertFile(ctx, newFile("u1", record.RootParentID, "mine"))
		require.NoError(t, err)
		_, err = store.InsertFile(ctx, newFile("u2", record.RootParentID, "theirs"))
		require.NoError(t, err)
		_, err = store.InsertFile(ctx, newFile("u1", "parent-1", "nested"))
		require.NoError(t, err)

		listed, err := store.ListFiles(ctx, "u1", record.RootParentID, 0, 20)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "mine", listed[0].Name)
	})

	t.Run("SetVisibility", func(t *testing.T) {
		store := NewMemoryRecordStore()

		inserted, err := store.InsertFile(ctx, newFile("u1", record.RootParentID, "a.txt"))
		require.NoError(t, err)

		updated, err := store.SetFileVisibility(ctx, inserted.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.IsPublic)

		found, err := store.FindFileByID(ctx, inserted.ID)
		require.NoError(t, err)
		assert.True(t, found.IsPublic)
	})

	t.Run("SetVisibilityUnknownID", func(t *testing.T) {
		store := NewMemoryRecordStore()

		_, err := store.SetFileVisibility(ctx, "ffffffffffffffffffffffff", true)
		assert.True(t, record.IsNotFound(err))
	})

	t.Run("ReturnedRecordsAreCopies", func(t *testing.T) {
		store := NewMemoryRecordStore()

		inserted, err := store.InsertFile(ctx, newFile("u1", record.RootParentID, "a.txt"))
		require.NoError(t, err)

		inserted.Name = "mutated"

		found, err := store.FindFileByID(ctx, inserted.ID)
		require.NoError(t, err)
		assert.Equal(t, "a.txt", found.Name)
	})
}
