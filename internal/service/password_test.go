// File: internal/service/password_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, CheckPassword(hash, "secret1"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("not a hash", "secret1"))
}

func TestHashPasswordInvalidCost(t *testing.T) {
	_, err := HashPassword("secret1", 99)
	require.Error(t, err)
}
