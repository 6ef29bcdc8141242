package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	require.NoError(t, err)

	// Hash bcrypt salé : jamais le mot de passe en clair.
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "motdepasse")

	assert.True(t, VerifyPassword("motdepasse", hash))
	assert.False(t, VerifyPassword("mauvais", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("pareil")
	require.NoError(t, err)
	h2, err := HashPassword("pareil")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
