package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}

func TestLongPasswordTruncation(t *testing.T) {
	hasher := NewBcryptHasher(4)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	// Verification must agree with hashing on the truncation boundary.
	assert.NoError(t, hasher.Compare(hash, long))
	assert.NoError(t, hasher.Compare(hash, strings.Repeat("a", 72)))
	assert.NoError(t, hasher.Compare(hash, strings.Repeat("a", 73)))
	assert.Error(t, hasher.Compare(hash, strings.Repeat("a", 71)))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "password123"))
}
