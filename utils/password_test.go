package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1234")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2"))
	require.NotEqual(t, "pw1234", hash)

	ok, err := VerifyPassword(hash, "pw1234")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pw1234")
	require.NoError(t, err)

	second, err := HashPassword("pw1234")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	_, err := VerifyPassword("not-a-hash", "pw1234")
	require.Error(t, err)
}
