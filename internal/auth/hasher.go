// Package auth provides password hashing and bearer-token primitives.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts the hashing scheme from its consumers.
type PasswordHasher interface {
	// Hash produces a salted hash of the password. The same password
	// hashes to a different string on every call.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash
	// is just a mismatch.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt at the default cost.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
