package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("longenough1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "longenough1", hash)

	assert.True(t, CompareHashAndPassword(hash, "longenough1"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpass1"))
}

func TestHashPasswordUnique(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)
	// bcrypt salts every hash
	assert.NotEqual(t, h1, h2)
}
