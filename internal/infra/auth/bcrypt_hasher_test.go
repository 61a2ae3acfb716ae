package auth

import (
	"testing"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasher() service.PasswordHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // low cost keeps tests fast

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newHasher()

	password := "password123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrongpassword", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := newHasher()

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newHasher()

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password123", first))
	assert.True(t, hasher.Check("password123", second))
}
