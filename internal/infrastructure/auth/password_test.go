package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	t.Run("acepta la contraseña correcta", func(t *testing.T) {
		assert.True(t, CheckPassword(hash, "secreto123"))
	})

	t.Run("rechaza una contraseña incorrecta", func(t *testing.T) {
		assert.False(t, CheckPassword(hash, "otra"))
	})

	t.Run("rechaza un hash corrupto", func(t *testing.T) {
		assert.False(t, CheckPassword("no-es-un-hash", "secreto123"))
	})
}
