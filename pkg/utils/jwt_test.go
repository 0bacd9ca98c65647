package utils

import (
	"testing"

	appErrors "moviebag/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "test-secret", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "test-secret", 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	_, err = ValidateToken("", "test-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
