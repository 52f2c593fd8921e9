package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authd/internal/session"
	"authd/internal/user"
)

const testCookieName = "_my_session_id"

func newSessionFixture(t *testing.T) (*SessionAuth, *session.Registry, *user.User) {
	t.Helper()

	store := user.NewMemStore()
	u, err := store.Add(context.Background(), "a@x.com", "hashed-pw")
	require.NoError(t, err)

	registry := session.NewRegistry()
	return NewSessionAuth(store, registry, testCookieName), registry, u
}

func requestWithSession(sessionID string) *http.Request {
	r := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
	}
	return r
}

func TestSessionAuthLifecycle(t *testing.T) {
	ctx := context.Background()
	a, _, u := newSessionFixture(t)

	sessionID, err := a.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	resolved, err := a.CurrentUser(requestWithSession(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resolved.Email)
	assert.Equal(t, sessionID, resolved.SessionID)

	require.NoError(t, a.DestroySession(requestWithSession(sessionID)))

	// A destroyed session id never resolves again.
	_, err = a.CurrentUser(requestWithSession(sessionID))
	assert.ErrorIs(t, err, user.ErrNotFound)

	// Destroying it twice reports nothing to destroy.
	assert.ErrorIs(t, a.DestroySession(requestWithSession(sessionID)), user.ErrNotFound)
}

func TestSessionAuthCreateSessionInvalidUser(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newSessionFixture(t)

	_, err := a.CreateSession(ctx, "")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = a.CreateSession(ctx, "no-such-user")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSessionAuthConcurrentSessionsAllowed(t *testing.T) {
	ctx := context.Background()
	a, _, u := newSessionFixture(t)

	first, err := a.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	second, err := a.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Both sessions resolve; destroying one leaves the other alive.
	_, err = a.CurrentUser(requestWithSession(first))
	require.NoError(t, err)
	_, err = a.CurrentUser(requestWithSession(second))
	require.NoError(t, err)

	require.NoError(t, a.DestroySession(requestWithSession(first)))
	_, err = a.CurrentUser(requestWithSession(second))
	assert.NoError(t, err)
}

func TestSessionAuthMissingCookie(t *testing.T) {
	a, _, _ := newSessionFixture(t)

	_, err := a.CurrentUser(requestWithSession(""))
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSessionExpAuthExpiration(t *testing.T) {
	a, registry, u := newSessionFixture(t)
	exp := NewSessionExpAuth(a, 60)

	sessionID, err := exp.CreateSession(context.Background(), u.ID)
	require.NoError(t, err)

	// Fresh session resolves.
	resolved, err := exp.CurrentUser(requestWithSession(sessionID))
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)

	// Backdate the entry past the duration: the lookup now fails,
	// but the entry itself stays stored (lazy expiration, no sweep).
	registry.Put(sessionID, session.Entry{
		UserID:    u.ID,
		CreatedAt: time.Now().Add(-61 * time.Second),
	})

	_, err = exp.CurrentUser(requestWithSession(sessionID))
	assert.ErrorIs(t, err, ErrExpired)

	_, stillThere := registry.Get(sessionID)
	assert.True(t, stillThere)
}

func TestSessionExpAuthBoundary(t *testing.T) {
	a, registry, u := newSessionFixture(t)
	exp := NewSessionExpAuth(a, 1)

	registry.Put("boundary", session.Entry{
		UserID:    u.ID,
		CreatedAt: time.Now().Add(-time.Second),
	})

	// Elapsed time >= duration expires the session.
	_, err := exp.UserIDForSessionID("boundary")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSessionExpAuthZeroDurationNeverExpires(t *testing.T) {
	a, registry, u := newSessionFixture(t)
	exp := NewSessionExpAuth(a, 0)

	registry.Put("ancient", session.Entry{
		UserID:    u.ID,
		CreatedAt: time.Now().Add(-1000 * time.Hour),
	})

	userID, err := exp.UserIDForSessionID("ancient")
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	// Negative durations behave the same.
	expNeg := NewSessionExpAuth(a, -5)
	userID, err = expNeg.UserIDForSessionID("ancient")
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}
