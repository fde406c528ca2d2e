package auth

import (
	"testing"

	"classteacher/config"
	"classteacher/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("password124", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_DummyCheck(t *testing.T) {
	hasher := newTestHasher(t)

	// DummyCheck has no result to observe; it must simply not panic for any
	// input, including empty and oversized passwords.
	hasher.DummyCheck("")
	hasher.DummyCheck("some-password")
	hasher.DummyCheck(string(make([]byte, 100)))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	require.NoError(t, err)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
