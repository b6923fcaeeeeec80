package auth

import (
	"testing"

	"placelog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "passw0rd!", hash)

	assert.True(t, hasher.Check("passw0rd!", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("passw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_NilConfigFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("passw0rd!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("passw0rd!", hash))
}
