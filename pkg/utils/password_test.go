package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("mycoolpassword")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "mycoolpassword", hash)

	assert.True(t, CheckPassword(hash, "mycoolpassword"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "samepassword"))
	assert.True(t, CheckPassword(h2, "samepassword"))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
