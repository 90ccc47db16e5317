package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-service/internal/auth"
)

func TestHash(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	t.Run("produces a bcrypt hash", func(t *testing.T) {
		hash, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"))
		assert.NotEqual(t, "password123", hash)
	})

	t.Run("same password hashes differently across calls", func(t *testing.T) {
		hash1, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		hash2, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestVerify(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	t.Run("correct password verifies", func(t *testing.T) {
		hash, err := hasher.Hash("correctpassword")
		require.NoError(t, err)
		assert.True(t, hasher.Verify("correctpassword", hash))
	})

	t.Run("incorrect password fails", func(t *testing.T) {
		hash, err := hasher.Hash("correctpassword")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("wrongpassword", hash))
	})

	t.Run("malformed hash fails without panicking", func(t *testing.T) {
		assert.False(t, hasher.Verify("password", "not-a-hash"))
		assert.False(t, hasher.Verify("password", ""))
	})
}
