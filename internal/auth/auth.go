package auth

import (
	"context"
	"errors"
	"net/http"

	"authd/internal/user"
)

var (
	// ErrInvalidCredential covers malformed auth headers, unknown
	// emails and password mismatches alike, so a caller cannot tell
	// which part of the check failed.
	ErrInvalidCredential = errors.New("auth: invalid credentials")
	// ErrExpired means a session existed but its lifetime elapsed.
	ErrExpired = errors.New("auth: session expired")
	// ErrNotSupported means the active strategy has no mechanism for
	// the requested operation.
	ErrNotSupported = errors.New("auth: operation not supported")
)

// Strategy is the authentication capability contract. Variants layer
// behavior by composition: each wraps the strategy it extends and
// overrides what it upgrades.
type Strategy interface {
	// RequireAuth reports whether the given request path needs
	// authentication, given the configured excluded paths.
	RequireAuth(path string, excludedPaths []string) bool

	// CurrentUser resolves the request's credentials or session
	// cookie to a user record.
	CurrentUser(r *http.Request) (*user.User, error)

	// CreateSession opens a session for the user and returns the
	// new session id. Fails only if the user id is invalid.
	CreateSession(ctx context.Context, userID string) (string, error)

	// DestroySession tears down the session identified by the
	// request's cookie. user.ErrNotFound when nothing was destroyed.
	DestroySession(r *http.Request) error
}

// sessionCookie extracts the session id from the request cookie with
// the configured name. Empty string when absent.
func sessionCookie(r *http.Request, name string) string {
	if r == nil || name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
