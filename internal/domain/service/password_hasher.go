// Package service defines interfaces for domain capabilities implemented in infra:
// hashing, tokens, QR codes, notifications and event publishing.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
