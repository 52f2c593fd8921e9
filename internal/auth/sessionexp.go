package auth

import (
	"net/http"
	"time"

	"authd/internal/session"
	"authd/internal/user"
)

// SessionExpAuth extends SessionAuth with session expiration.
// Expiration is evaluated lazily at lookup time; expired entries stay
// in the registry until explicitly destroyed, they just never resolve
// again.
type SessionExpAuth struct {
	*SessionAuth
	duration time.Duration
}

// NewSessionExpAuth wraps a SessionAuth with a lifetime given in
// seconds. A duration of zero or less disables expiration entirely.
func NewSessionExpAuth(inner *SessionAuth, durationSeconds int) *SessionExpAuth {
	return &SessionExpAuth{
		SessionAuth: inner,
		duration:    time.Duration(durationSeconds) * time.Second,
	}
}

func (a *SessionExpAuth) UserIDForSessionID(sessionID string) (string, error) {
	if sessionID == "" {
		return "", user.ErrNotFound
	}
	entry, ok := a.registry.Get(sessionID)
	if !ok {
		return "", user.ErrNotFound
	}
	if err := a.checkExpired(entry.CreatedAt); err != nil {
		return "", err
	}
	return entry.UserID, nil
}

func (a *SessionExpAuth) CurrentUser(r *http.Request) (*user.User, error) {
	userID, err := a.UserIDForSessionID(a.SessionCookie(r))
	if err != nil {
		return nil, err
	}
	return a.userByID(r.Context(), userID)
}

// checkExpired applies the lazy expiration rule shared by the
// in-memory and persisted variants.
func (a *SessionExpAuth) checkExpired(createdAt time.Time) error {
	if a.duration <= 0 {
		return nil
	}
	if time.Since(createdAt) >= a.duration {
		return ErrExpired
	}
	return nil
}

// entry returns the raw registry entry, bypassing expiration. Used by
// the persisted variant to mirror CreatedAt into its record store.
func (a *SessionExpAuth) entry(sessionID string) (session.Entry, bool) {
	return a.registry.Get(sessionID)
}
