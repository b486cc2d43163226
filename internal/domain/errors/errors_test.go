package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	t.Run("extrae el error de dominio de una cadena envuelta", func(t *testing.T) {
		wrapped := fmt.Errorf("al crear: %w", Validation("dato inválido"))

		derr, ok := As(wrapped)
		require.True(t, ok)
		assert.Equal(t, KindValidation, derr.Kind)
		assert.Equal(t, "dato inválido", derr.Message)
	})

	t.Run("un error cualquiera no es de dominio", func(t *testing.T) {
		_, ok := As(assert.AnError)
		assert.False(t, ok)
	})
}

func TestError_Error(t *testing.T) {
	t.Run("solo el mensaje", func(t *testing.T) {
		assert.Equal(t, "no encontrado", NotFound("no encontrado").Error())
	})

	t.Run("mensaje con causa", func(t *testing.T) {
		err := &Error{Kind: KindValidation, Message: "rechazado", Err: assert.AnError}
		assert.Contains(t, err.Error(), "rechazado: ")
	})
}

func TestErrInvalidCredentials(t *testing.T) {
	derr, ok := As(ErrInvalidCredentials)
	require.True(t, ok)
	assert.Equal(t, KindUnauthorized, derr.Kind)
	assert.Equal(t, "Credenciales inválidas", derr.Message)
}
