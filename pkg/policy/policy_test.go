package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

func TestCanRead(t *testing.T) {
	owner := Identity("owner-1")
	other := Identity("other-2")

	privateFile := &record.File{OwnerID: "owner-1", Kind: record.KindFile}
	publicFile := &record.File{OwnerID: "owner-1", Kind: record.KindFile, IsPublic: true}

	t.Run("OwnerReadsPrivate", func(t *testing.T) {
		assert.True(t, CanRead(owner, privateFile))
	})

	t.Run("OtherUserDeniedPrivate", func(t *testing.T) {
		assert.False(t, CanRead(other, privateFile))
	})

	t.Run("AnonymousDeniedPrivate", func(t *testing.T) {
		assert.False(t, CanRead(Anonymous, privateFile))
	})

	t.Run("AnyoneReadsPublic", func(t *testing.T) {
		assert.True(t, CanRead(owner, publicFile))
		assert.True(t, CanRead(other, publicFile))
		assert.True(t, CanRead(Anonymous, publicFile))
	})
}

func TestCanWrite(t *testing.T) {
	owner := Identity("owner-1")
	other := Identity("other-2")

	publicFile := &record.File{OwnerID: "owner-1", Kind: record.KindFile, IsPublic: true}

	t.Run("OwnerWrites", func(t *testing.T) {
		assert.True(t, CanWrite(owner, publicFile))
	})

	t.Run("PublicGrantsNoWrite", func(t *testing.T) {
		assert.False(t, CanWrite(other, publicFile))
		assert.False(t, CanWrite(Anonymous, publicFile))
	})
}

func TestCanCreateUnder(t *testing.T) {
	user := Identity("owner-1")
	folder := &record.File{OwnerID: "someone-else", Kind: record.KindFolder}
	plainFile := &record.File{OwnerID: "owner-1", Kind: record.KindFile}

	t.Run("RootAlwaysValidTarget", func(t *testing.T) {
		assert.True(t, CanCreateUnder(user, nil))
	})

	t.Run("AnyFolderRegardlessOfOwner", func(t *testing.T) {
		assert.True(t, CanCreateUnder(user, folder))
	})

	t.Run("NonFolderParentRejected", func(t *testing.T) {
		assert.False(t, CanCreateUnder(user, plainFile))
	})

	t.Run("AnonymousNeverCreates", func(t *testing.T) {
		assert.False(t, CanCreateUnder(Anonymous, nil))
		assert.False(t, CanCreateUnder(Anonymous, folder))
	})
}

func TestIsAnonymous(t *testing.T) {
	assert.True(t, Anonymous.IsAnonymous())
	assert.False(t, Identity("owner-1").IsAnonymous())
}
