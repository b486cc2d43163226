package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	service := NewTokenService("clave-de-prueba", "1h")

	token, err := service.Issue("user-1", "ana@mail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_Verify(t *testing.T) {
	service := NewTokenService("clave-de-prueba", "1h")

	t.Run("rechaza un token malformado", func(t *testing.T) {
		_, err := service.Verify("no.es.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rechaza un token firmado con otra clave", func(t *testing.T) {
		other := NewTokenService("otra-clave", "1h")
		token, err := other.Issue("user-1", "ana@mail.com")
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rechaza un token expirado", func(t *testing.T) {
		expired := &TokenService{secret: []byte("clave-de-prueba"), expiry: -1}
		token, err := expired.Issue("user-1", "ana@mail.com")
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenService_ExpiryFallback(t *testing.T) {
	// No hay forma directa de leer expiry; basta con que emita y valide
	service := NewTokenService("clave", "no-es-duracion")
	token, err := service.Issue("user-1", "a@a.com")
	require.NoError(t, err)

	userID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}
