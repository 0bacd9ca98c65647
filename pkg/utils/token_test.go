package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	t1, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, t1, 64)

	t2, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestHashResetToken(t *testing.T) {
	h := HashResetToken("some-token")
	assert.Len(t, h, 64)
	assert.NotEqual(t, "some-token", h)

	// Deterministic: the stored hash must match the hash of the
	// presented token on lookup.
	assert.Equal(t, h, HashResetToken("some-token"))
	assert.NotEqual(t, h, HashResetToken("other-token"))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", SanitizeEmail("  User@Example.COM \n"))
	assert.Equal(t, "user@example.com", SanitizeEmail("user@example.com"))
}
