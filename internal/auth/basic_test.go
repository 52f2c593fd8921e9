package auth

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authd/internal/auth/credentials"
	"authd/internal/user"
)

func basicHeader(payload string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestBasicAuthExtractCredentials(t *testing.T) {
	a := NewBasicAuth(user.NewMemStore())

	cases := []struct {
		name      string
		header    string
		wantEmail string
		wantPass  string
		wantErr   bool
	}{
		{"valid", basicHeader("bob@x.com:secret"), "bob@x.com", "secret", false},
		{"password containing colons splits on first colon only", basicHeader("bob@x.com:se:cret"), "bob@x.com", "se:cret", false},
		{"empty password", basicHeader("bob@x.com:"), "bob@x.com", "", false},
		{"missing header", "", "", "", true},
		{"wrong scheme", "Bearer abc", "", "", true},
		{"scheme must match exactly", "basic " + base64.StdEncoding.EncodeToString([]byte("a:b")), "", "", true},
		{"invalid base64", "Basic %%%not-base64%%%", "", "", true},
		{"no colon in payload", basicHeader("bob@x.com"), "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/users/me", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			email, password, err := a.ExtractCredentials(r)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredential)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, email)
			assert.Equal(t, tc.wantPass, password)
		})
	}
}

func TestBasicAuthResolveUser(t *testing.T) {
	ctx := context.Background()
	store := user.NewMemStore()

	hashed, err := credentials.Hash("pw1")
	require.NoError(t, err)
	registered, err := store.Add(ctx, "a@x.com", hashed)
	require.NoError(t, err)

	a := NewBasicAuth(store)

	u, err := a.ResolveUser(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	// Unknown email and wrong password look identical from outside.
	_, err = a.ResolveUser(ctx, "nobody@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = a.ResolveUser(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = a.ResolveUser(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestBasicAuthCurrentUser(t *testing.T) {
	store := user.NewMemStore()

	hashed, err := credentials.Hash("se:cret")
	require.NoError(t, err)
	_, err = store.Add(context.Background(), "bob@x.com", hashed)
	require.NoError(t, err)

	a := NewBasicAuth(store)

	r := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	r.Header.Set("Authorization", basicHeader("bob@x.com:se:cret"))

	u, err := a.CurrentUser(r)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", u.Email)

	r = httptest.NewRequest("GET", "/api/v1/users/me", nil)
	_, err = a.CurrentUser(r)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
