package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordmem "github.com/depotlabs/filedepot/pkg/store/record/memory"
	sessionmem "github.com/depotlabs/filedepot/pkg/store/session/memory"
)

// newTestManager returns a manager over in-memory stores with one registered
// user, bob@example.com / secret.
func newTestManager(t *testing.T, ttl time.Duration) (*Manager, string) {
	t.Helper()

	records := recordmem.NewMemoryRecordStore()

	hash, err := HashPassword("secret")
	require.NoError(t, err)

	user, err := records.CreateUser(context.Background(), "bob@example.com", hash)
	require.NoError(t, err)

	return NewManager(records, sessionmem.NewMemorySessionCache(), ttl), user.ID
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("IssuesResolvableToken", func(t *testing.T) {
		mgr, userID := newTestManager(t, time.Minute)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		resolved, err := mgr.ResolveSession(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("TokensAreUnique", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		first, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)
		second, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("UnknownEmailAndWrongPasswordIndistinguishable", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		_, unknownErr := mgr.CreateSession(ctx, "nobody@example.com", "secret")
		_, wrongErr := mgr.CreateSession(ctx, "bob@example.com", "nope")

		assert.ErrorIs(t, unknownErr, ErrUnauthorized)
		assert.ErrorIs(t, wrongErr, ErrUnauthorized)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("EmptyCredentialsRejected", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		_, err := mgr.CreateSession(ctx, "", "secret")
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = mgr.CreateSession(ctx, "bob@example.com", "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownToken", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		_, err := mgr.ResolveSession(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		_, err := mgr.ResolveSession(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Millisecond)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = mgr.ResolveSession(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ResolutionHasNoSideEffect", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := mgr.ResolveSession(ctx, token)
			require.NoError(t, err)
		}
	})
}

func TestDestroySession(t *testing.T) {
	ctx := context.Background()

	t.Run("RevokedTokenStopsResolving", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		require.NoError(t, mgr.DestroySession(ctx, token))

		_, err = mgr.ResolveSession(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("SecondDestroyFails", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		require.NoError(t, mgr.DestroySession(ctx, token))
		assert.ErrorIs(t, mgr.DestroySession(ctx, token), ErrUnauthorized)
	})

	t.Run("UnknownTokenFails", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		assert.ErrorIs(t, mgr.DestroySession(ctx, "deadbeef"), ErrUnauthorized)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsFullRecord", func(t *testing.T) {
		mgr, userID := newTestManager(t, time.Minute)

		token, err := mgr.CreateSession(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		user, err := mgr.GetUser(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		mgr, _ := newTestManager(t, time.Minute)

		_, err := mgr.GetUser(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "Secret"))
}
