package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	// MinCost keeps the test fast; production uses the configured cost
	hasher := NewBcryptHasher(4)

	t.Run("Hash and verify round trip", func(t *testing.T) {
		hash, err := hasher.Hash("Passw0rd")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "Passw0rd", hash)

		assert.True(t, hasher.Verify(hash, "Passw0rd"))
		assert.False(t, hasher.Verify(hash, "wrong"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("Passw0rd")
		require.NoError(t, err)
		second, err := hasher.Hash("Passw0rd")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Verify with malformed hash", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "Passw0rd"))
	})
}
