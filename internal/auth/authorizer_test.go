package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/api/v1/stat*"}

	cases := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"empty path", "", excluded, true},
		{"nil excluded list", "/api/v1/status", nil, true},
		{"empty excluded list", "/api/v1/status", []string{}, true},
		{"exact match", "/api/v1/status/", excluded, false},
		{"exact match after slash normalization", "/api/v1/status", excluded, false},
		{"wildcard prefix match", "/api/v1/stats", excluded, false},
		{"wildcard matches deeper paths", "/api/v1/status/extended/", excluded, false},
		{"no match", "/api/v1/users", excluded, true},
		{"prefix without wildcard is not a match", "/api/v1/statuses", []string{"/api/v1/status/"}, true},
		{"wildcard alone matches everything", "/anything/at/all", []string{"*"}, false},
		{"empty entry ignored", "/api/v1/users", []string{"", "/api/v1/users/"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequireAuth(tc.path, tc.excluded))
		})
	}
}

func TestNoAuthRequireAuthIsExactMatchOnly(t *testing.T) {
	var a NoAuth

	excluded := []string{"/api/v1/status/", "/api/v1/stat*"}

	assert.False(t, a.RequireAuth("/api/v1/status", excluded))
	assert.False(t, a.RequireAuth("/api/v1/status/", excluded))

	// The base variant predates wildcard support: the pattern entry
	// only matches itself literally.
	assert.True(t, a.RequireAuth("/api/v1/stats", excluded))

	assert.True(t, a.RequireAuth("/api/v1/users", excluded))
	assert.True(t, a.RequireAuth("/api/v1/status", nil))
	assert.True(t, a.RequireAuth("", excluded))
}
