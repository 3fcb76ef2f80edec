// Package auth issues, resolves, and revokes session tokens.
//
// A session is an ephemeral token-to-user mapping held in the session cache
// with a fixed time-to-live. The manager here is the cache's only writer.
// Every failure mode (unknown email, wrong password, missing or expired
// token) collapses into the single ErrUnauthorized so callers can never
// learn which part of a credential was wrong.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/store/record"
	"github.com/depotlabs/filedepot/pkg/store/session"
)

// ErrUnauthorized is the single authentication failure. It deliberately
// carries no detail about what went wrong.
var ErrUnauthorized = errors.New("Unauthorized")

// DefaultSessionTTL is how long an issued token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// cacheKeyPrefix namespaces session entries inside the cache.
const cacheKeyPrefix = "auth_"

// Manager issues and revokes session tokens and resolves them to user
// identities.
type Manager struct {
	records record.Store
	cache   session.Cache
	ttl     time.Duration
}

// NewManager creates a session manager writing to the given cache. A
// non-positive ttl falls back to DefaultSessionTTL.
func NewManager(records record.Store, cache session.Cache, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		records: records,
		cache:   cache,
		ttl:     ttl,
	}
}

// CreateSession authenticates the email/password pair and returns a fresh
// session token bound to the user for the configured TTL.
//
// An unknown email and a wrong password both fail with ErrUnauthorized; the
// caller cannot tell which field was rejected.
func (m *Manager) CreateSession(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrUnauthorized
	}

	user, err := m.records.FindUserByEmail(ctx, email)
	if record.IsNotFound(err) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrUnauthorized
	}

	token := uuid.NewString()
	if err := m.cache.Set(ctx, cacheKeyPrefix+token, user.ID, m.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	logger.Debug("Session created for user %s", user.ID)

	return token, nil
}

// ResolveSession returns the user id bound to token, or ErrUnauthorized if
// the token is empty, unknown, or expired. Pure read, no side effect.
func (m *Manager) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	userID, err := m.cache.Get(ctx, cacheKeyPrefix+token)
	if errors.Is(err, session.ErrNoEntry) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	return userID, nil
}

// DestroySession revokes the session behind token. The token must currently
// resolve; destroying an already-destroyed session fails with
// ErrUnauthorized, so a second call on the same token is an observable
// error.
func (m *Manager) DestroySession(ctx context.Context, token string) error {
	if _, err := m.ResolveSession(ctx, token); err != nil {
		return err
	}

	if err := m.cache.Del(ctx, cacheKeyPrefix+token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetUser resolves token and loads the full user record behind it. A user
// that disappeared from the record store after the session was issued is
// reported as ErrUnauthorized like any other resolution failure.
func (m *Manager) GetUser(ctx context.Context, token string) (*record.User, error) {
	userID, err := m.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := m.records.FindUserByID(ctx, userID)
	if record.IsNotFound(err) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, nil
}
