package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plain text password using bcrypt. bcrypt embeds a
// fresh random salt, so hashing the same password twice yields different
// strings.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain was the input of the bcrypt hash.
// The comparison is constant-time inside bcrypt; a malformed hash simply
// yields false.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DummyHash returns a valid bcrypt hash of a throwaway value. Login paths
// compare against it when the email is unknown so the response timing does
// not reveal whether an account exists.
func DummyHash() string {
	h, err := HashPassword("dummy-timing-equalizer")
	if err != nil {
		// bcrypt only fails on over-long input; this value is fixed.
		panic(err)
	}
	return h
}
