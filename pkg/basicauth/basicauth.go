// Package basicauth implements the HTTP Basic Authentication header codec
// and the path-exclusion policy used to decide whether a request needs
// authentication at all. It is independent of session handling.
package basicauth

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

const prefix = "Basic "

// ExtractBase64Header returns the base64 payload of an
// `Authorization: Basic <b64>` header value. The prefix match is exact and
// case-sensitive, including the trailing space.
func ExtractBase64Header(header string) (string, bool) {
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// DecodeBase64 decodes the payload. Invalid base64 or a result that is not
// valid UTF-8 yields ok=false; nothing escapes this boundary as an error.
func DecodeBase64(b64 string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// ExtractCredentials splits a decoded `user:password` pair on the first
// colon only, so the password may itself contain colons.
func ExtractCredentials(decoded string) (user, password string, ok bool) {
	user, password, ok = strings.Cut(decoded, ":")
	if !ok {
		return "", "", false
	}
	return user, password, true
}

// RequireAuth reports whether path needs authentication given the excluded
// paths. A path is exempt when it equals an entry exactly, or equals an
// entry with its single trailing character stripped — which tolerates a
// missing or extra trailing slash. An empty path or an empty exclusion
// list always requires auth.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}
	for _, excluded := range excludedPaths {
		if path == excluded {
			return false
		}
		if excluded != "" && path == excluded[:len(excluded)-1] {
			return false
		}
	}
	return true
}
