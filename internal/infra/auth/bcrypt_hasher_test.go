package auth

import (
	"testing"

	"roster/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test suite fast; production cost comes from config.
	return &bcryptHasher{cost: 4}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	digest, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, password, digest)

	match, err := hasher.Check(password, digest)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	digest, err := hasher.Hash(password)
	require.NoError(t, err)

	// Correct password
	match, err := hasher.Check(password, digest)
	require.NoError(t, err)
	assert.True(t, match)

	// Wrong password is a clean negative, not an error
	match, err = hasher.Check("WrongPassword123!", digest)
	require.NoError(t, err)
	assert.False(t, match)

	// Empty password is a clean negative as well
	match, err = hasher.Check("", digest)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_CheckMalformedDigest(t *testing.T) {
	hasher := newTestHasher()

	match, err := hasher.Check("StrongPass123!", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Fresh salt per digest
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	digest, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	match, err := hasher.Check("StrongPass123!", digest)
	require.NoError(t, err)
	assert.True(t, match)
}
