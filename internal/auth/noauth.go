package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"authd/internal/user"
)

// NoAuth is the base strategy. It carries no credential mechanism:
// every identity operation fails. Its path matching predates wildcard
// support and is exact-match only; it is kept as a variant for
// deployments that gate everything behind the excluded list alone.
type NoAuth struct{}

func (NoAuth) RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return !slices.Contains(excludedPaths, path)
}

func (NoAuth) CurrentUser(r *http.Request) (*user.User, error) {
	return nil, ErrInvalidCredential
}

func (NoAuth) CreateSession(ctx context.Context, userID string) (string, error) {
	return "", ErrNotSupported
}

func (NoAuth) DestroySession(r *http.Request) error {
	return ErrNotSupported
}
