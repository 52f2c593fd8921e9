package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash hashes a plaintext password using bcrypt. Every call salts
// freshly, so hashing the same password twice yields different
// outputs.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches the stored hash. The
// comparison is constant-time. A malformed hash verifies as false;
// no error escapes to the caller.
func Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	) == nil
}
