// internal/accounts/password_test.go
package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, salt, err := hashPassword("SecurePass123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEmpty(t, salt)

	ok, err := verifyPassword("SecurePass123!", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("WrongPass123!", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	hash1, salt1, err := hashPassword("SecurePass123!")
	require.NoError(t, err)
	hash2, salt2, err := hashPassword("SecurePass123!")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPasswordBadEncoding(t *testing.T) {
	_, err := verifyPassword("anything", "not base64 !!!", "also not base64 !!!")
	assert.Error(t, err)
}
