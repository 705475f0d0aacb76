// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. Two calls
	// with the same plaintext may yield different digests; callers must
	// use Check, never digest equality.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest. A mismatch is
	// (false, nil); the error is non-nil only for a malformed digest.
	Check(password, digest string) (bool, error)
}
