package auth

import (
	"context"
	"net/http"
	"time"

	"authd/internal/session"
	"authd/internal/user"
)

// SessionAuth authenticates requests from a session cookie backed by
// the in-memory registry. It extends NoAuth on an independent branch
// from BasicAuth and upgrades path matching to wildcard patterns.
type SessionAuth struct {
	NoAuth
	users      user.Store
	registry   *session.Registry
	cookieName string
}

func NewSessionAuth(users user.Store, registry *session.Registry, cookieName string) *SessionAuth {
	return &SessionAuth{
		users:      users,
		registry:   registry,
		cookieName: cookieName,
	}
}

func (a *SessionAuth) RequireAuth(path string, excludedPaths []string) bool {
	return RequireAuth(path, excludedPaths)
}

// SessionCookie returns the session id presented by the request, or
// empty if the cookie is missing.
func (a *SessionAuth) SessionCookie(r *http.Request) string {
	return sessionCookie(r, a.cookieName)
}

// CreateSession opens a session for the user: a fresh unguessable id
// is recorded in the registry and stamped on the user record as the
// most recent session. Fails only when the user id does not resolve.
func (a *SessionAuth) CreateSession(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", user.ErrNotFound
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return "", err
	}

	if err := a.users.UpdateByID(ctx, userID, map[string]string{
		user.FieldSessionID: sessionID,
	}); err != nil {
		return "", err
	}

	a.registry.Put(sessionID, session.Entry{
		UserID:    userID,
		CreatedAt: time.Now(),
	})

	return sessionID, nil
}

// UserIDForSessionID resolves a session id through the registry.
// Plain sessions never expire.
func (a *SessionAuth) UserIDForSessionID(sessionID string) (string, error) {
	if sessionID == "" {
		return "", user.ErrNotFound
	}
	entry, ok := a.registry.Get(sessionID)
	if !ok {
		return "", user.ErrNotFound
	}
	return entry.UserID, nil
}

func (a *SessionAuth) CurrentUser(r *http.Request) (*user.User, error) {
	userID, err := a.UserIDForSessionID(a.SessionCookie(r))
	if err != nil {
		return nil, err
	}
	return a.userByID(r.Context(), userID)
}

func (a *SessionAuth) DestroySession(r *http.Request) error {
	sessionID := a.SessionCookie(r)
	if sessionID == "" {
		return user.ErrNotFound
	}
	if !a.registry.Delete(sessionID) {
		return user.ErrNotFound
	}
	// Clear the user's session pointer when it still references the
	// destroyed session.
	if u, err := a.users.FindOneBy(r.Context(), map[string]string{user.FieldSessionID: sessionID}); err == nil {
		_ = a.users.UpdateByID(r.Context(), u.ID, map[string]string{user.FieldSessionID: ""})
	}
	return nil
}

func (a *SessionAuth) userByID(ctx context.Context, userID string) (*user.User, error) {
	return a.users.FindOneBy(ctx, map[string]string{user.FieldID: userID})
}
