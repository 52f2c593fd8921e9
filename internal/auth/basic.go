package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"authd/internal/auth/credentials"
	"authd/internal/user"
)

const basicPrefix = "Basic "

// BasicAuth authenticates every request from an Authorization header
// of the form "Basic <base64(email:password)>". It extends NoAuth:
// path matching stays exact-match only.
type BasicAuth struct {
	NoAuth
	users user.Store
}

func NewBasicAuth(users user.Store) *BasicAuth {
	return &BasicAuth{users: users}
}

// ExtractCredentials pulls the email and password out of the request's
// Authorization header. The scheme prefix must be exactly "Basic ",
// the payload valid base64, and the decoded text must contain a
// colon. The split happens on the FIRST colon only, so passwords may
// themselves contain colons. Every malformed input yields
// ErrInvalidCredential, never a panic or a partial result.
func (a *BasicAuth) ExtractCredentials(r *http.Request) (email, password string, err error) {
	if r == nil {
		return "", "", ErrInvalidCredential
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", ErrInvalidCredential
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return "", "", ErrInvalidCredential
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", ErrInvalidCredential
	}

	return email, password, nil
}

// ResolveUser maps an email/password pair to a user record. An
// unknown email and a wrong password are deliberately
// indistinguishable.
func (a *BasicAuth) ResolveUser(ctx context.Context, email, password string) (*user.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredential
	}

	u, err := a.users.FindOneBy(ctx, map[string]string{user.FieldEmail: email})
	if err != nil {
		return nil, ErrInvalidCredential
	}

	if !credentials.Verify(u.HashedPassword, password) {
		return nil, ErrInvalidCredential
	}

	return u, nil
}

func (a *BasicAuth) CurrentUser(r *http.Request) (*user.User, error) {
	email, password, err := a.ExtractCredentials(r)
	if err != nil {
		return nil, err
	}
	return a.ResolveUser(r.Context(), email, password)
}
