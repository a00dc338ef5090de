// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Two hashes of the same plaintext differ because of the embedded salt.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed hash is reported as a mismatch, never as a panic or error.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks a plaintext password against the
	// configured policy before it is ever hashed.
	ValidatePasswordStrength(password string) error
}
