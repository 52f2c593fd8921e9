package middleware

import (
	"context"
	"errors"
	"net/http"

	"authd/internal/auth"
	"authd/internal/user"
)

// unexported, collision-proof context key
type currentUserContextKeyType struct{}

var currentUserKey = currentUserContextKeyType{}

// CurrentUserFromContext extracts the authenticated user from the
// request context.
func CurrentUserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*user.User)
	return u, ok
}

// AuthMiddleware gates requests behind the active strategy. Paths on
// the excluded list pass through untouched; everything else must
// resolve to a user.
type AuthMiddleware struct {
	strategy      auth.Strategy
	excludedPaths []string
}

func NewAuthMiddleware(strategy auth.Strategy, excludedPaths []string) *AuthMiddleware {
	return &AuthMiddleware{
		strategy:      strategy,
		excludedPaths: excludedPaths,
	}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.strategy.RequireAuth(r.URL.Path, a.excludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		// No credentials at all is a 401; credentials that do not
		// resolve are a 403.
		if r.Header.Get("Authorization") == "" && !hasCookies(r) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := a.strategy.CurrentUser(r)
		if err != nil || u == nil {
			if errors.Is(err, auth.ErrNotSupported) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func hasCookies(r *http.Request) bool {
	return len(r.Cookies()) > 0
}
