package core

// PasswordHasher abstracts one-way password hashing and verification.
// Implementations must use a memory-hard or iterated hash, never a plain digest.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext password
	Hash(password string) (string, error)
	// Verify reports whether the plaintext password matches the stored hash
	Verify(hash, password string) bool
}
