package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	passwordHash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", passwordHash)

	assert.True(t, hasher.Verify("secret123", passwordHash))
	assert.False(t, hasher.Verify("wrong", passwordHash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasher(1000)

	passwordHash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("secret123", passwordHash))
}
