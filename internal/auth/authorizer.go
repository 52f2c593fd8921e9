package auth

import "strings"

// RequireAuth reports whether a path needs authentication given an
// excluded-path list. Paths are normalized to a trailing slash before
// comparison. An entry ending in "*" matches any path sharing its
// prefix; otherwise the match is exact. Entries are checked in order
// and the first match wins. A missing path or an empty list means
// everything requires auth.
//
// Pure function: no side effects, no I/O.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}
		if strings.HasSuffix(excluded, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(excluded, "*")) {
				return false
			}
		} else if path == excluded {
			return false
		}
	}

	return true
}
