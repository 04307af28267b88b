// Package hasher wraps bcrypt for credential storage and verification.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash generates a salted hash from a plaintext password.
func Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether a plaintext password matches a stored hash.
func Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
