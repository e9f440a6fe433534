package auth

import (
	"github.com/multinvest/platform/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher port using bcrypt, a salted,
// iterated hash with constant-time comparison.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost; values below the
// bcrypt minimum fall back to the library default.
func NewBcryptHasher(cost int) core.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
