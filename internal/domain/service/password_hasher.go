// Package service holds the domain-level service contracts that do not
// belong to any single entity.
package service

// PasswordHasher turns plaintext passwords into salted digests and
// verifies them. The domain only sees this interface; the algorithm
// behind it lives in the infra layer.
type PasswordHasher interface {
	// Hash derives a salted digest from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the digest.
	Check(password, hash string) bool
}
