package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordVerifier(t *testing.T) {
	// MinCost keeps the test fast; the hashing path is identical.
	verifier := NewPasswordVerifier(bcrypt.MinCost)

	t.Run("RoundTrip", func(t *testing.T) {
		hash, err := verifier.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.True(t, verifier.Verify("correct horse battery staple", hash))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := verifier.Hash("first")
		require.NoError(t, err)
		assert.False(t, verifier.Verify("second", hash))
	})

	t.Run("DistinctSalts", func(t *testing.T) {
		first, err := verifier.Hash("same input")
		require.NoError(t, err)
		second, err := verifier.Hash("same input")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("GarbageDigest", func(t *testing.T) {
		assert.False(t, verifier.Verify("anything", "not a bcrypt digest"))
	})
}

func TestNewPasswordVerifierClampsCost(t *testing.T) {
	low := NewPasswordVerifier(0)
	assert.Equal(t, bcrypt.DefaultCost, low.cost)

	high := NewPasswordVerifier(99)
	assert.Equal(t, bcrypt.DefaultCost, high.cost)

	valid := NewPasswordVerifier(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, valid.cost)
}
