package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"authd/internal/session"
	"authd/internal/user"
)

// SessionDBAuth extends SessionExpAuth with persisted session
// records, so sessions survive a process restart. Id generation is
// delegated to the wrapped strategy; this layer only adds the record
// store. Expiration follows the same lazy rule, applied against the
// persisted CreatedAt.
type SessionDBAuth struct {
	*SessionExpAuth
	records session.RecordStore
}

func NewSessionDBAuth(inner *SessionExpAuth, records session.RecordStore) *SessionDBAuth {
	return &SessionDBAuth{
		SessionExpAuth: inner,
		records:        records,
	}
}

func (a *SessionDBAuth) CreateSession(ctx context.Context, userID string) (string, error) {
	sessionID, err := a.SessionExpAuth.CreateSession(ctx, userID)
	if err != nil {
		return "", err
	}

	createdAt := time.Now()
	if entry, ok := a.entry(sessionID); ok {
		createdAt = entry.CreatedAt
	}

	if err := a.records.Save(ctx, session.Record{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: createdAt,
	}); err != nil {
		return "", err
	}

	return sessionID, nil
}

// UserIDForSessionID resolves against the persisted record rather
// than the in-memory registry.
func (a *SessionDBAuth) UserIDForSessionID(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", user.ErrNotFound
	}

	rec, err := a.records.Find(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return "", user.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if err := a.checkExpired(rec.CreatedAt); err != nil {
		return "", err
	}
	return rec.UserID, nil
}

func (a *SessionDBAuth) CurrentUser(r *http.Request) (*user.User, error) {
	userID, err := a.UserIDForSessionID(r.Context(), a.SessionCookie(r))
	if err != nil {
		return nil, err
	}
	return a.userByID(r.Context(), userID)
}

// DestroySession removes the persisted session named by the request
// cookie. user.ErrNotFound when no record was found and removed.
func (a *SessionDBAuth) DestroySession(r *http.Request) error {
	sessionID := a.SessionCookie(r)
	if sessionID == "" {
		return user.ErrNotFound
	}

	err := a.records.Delete(r.Context(), sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return user.ErrNotFound
	}
	if err != nil {
		return err
	}

	// Drop the in-memory duplicate as well; a destroyed id must
	// never resolve again through either path.
	a.registry.Delete(sessionID)
	return nil
}
