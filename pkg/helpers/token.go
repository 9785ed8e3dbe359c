package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateToken returns n bytes of cryptographically random data encoded as
// an URL-safe base64 string. Used for password-reset tokens.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
