package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/domain/errors"
)

func clientFixture(t *testing.T, env *testEnv) (realEstateID, agentID string) {
	t.Helper()
	re := env.createRealEstate(t, "Fixture")
	user := env.createUser(t, "agente", "agente@mail.com")
	agent := env.createAgent(t, user.ID, &re.ID)
	return re.ID, agent.ID
}

func TestClientService_CreateClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	realEstateID, agentID := clientFixture(t, env)

	t.Run("crea y devuelve la vista enriquecida", func(t *testing.T) {
		client := env.createClient(t, realEstateID, agentID, "111")
		require.NotNil(t, client.AgentName)
		assert.Equal(t, "agente", *client.AgentName)
		require.NotNil(t, client.RealEstateName)
		assert.Equal(t, "Fixture", *client.RealEstateName)
	})

	t.Run("documento duplicado es error de validación", func(t *testing.T) {
		_, err := env.clients.CreateClient(ctx, CreateClientInput{
			Name: "Copia", Email: "c@mail.com", Phone: "555",
			DocumentType: "dni", DocumentNumber: "111",
			RealEstateID: realEstateID, AgentID: agentID,
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
		assert.Equal(t, "El número de documento ya está registrado", derr.Message)
	})

	t.Run("agente inexistente es not found", func(t *testing.T) {
		_, err := env.clients.CreateClient(ctx, CreateClientInput{
			Name: "Sin agente", Email: "s@mail.com", Phone: "555",
			DocumentType: "dni", DocumentNumber: "222",
			RealEstateID: realEstateID, AgentID: "00000000-0000-0000-0000-000000000000",
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Agente no encontrado", derr.Message)
	})

	t.Run("inmobiliaria inexistente es not found", func(t *testing.T) {
		_, err := env.clients.CreateClient(ctx, CreateClientInput{
			Name: "Sin inmo", Email: "s2@mail.com", Phone: "555",
			DocumentType: "dni", DocumentNumber: "333",
			RealEstateID: "00000000-0000-0000-0000-000000000000", AgentID: agentID,
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Inmobiliaria no encontrada", derr.Message)
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	realEstateID, agentID := clientFixture(t, env)

	client := env.createClient(t, realEstateID, agentID, "111")
	env.createClient(t, realEstateID, agentID, "222")

	t.Run("los campos ausentes conservan su valor", func(t *testing.T) {
		phone := "555-7777"
		updated, err := env.clients.UpdateClient(ctx, client.ID, UpdateClientInput{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, client.Name, updated.Name)
		assert.Equal(t, "111", updated.DocumentNumber)
		assert.Equal(t, phone, updated.Phone)
	})

	t.Run("cambiar solo el número actualiza", func(t *testing.T) {
		number := "999"
		updated, err := env.clients.UpdateClient(ctx, client.ID, UpdateClientInput{DocumentNumber: &number})
		require.NoError(t, err)
		assert.Equal(t, "999", updated.DocumentNumber)
	})

	t.Run("el índice único respalda el update parcial", func(t *testing.T) {
		// Solo llega el número, la pre-verificación del par se omite
		// y el índice único rechaza el duplicado con el mismo mensaje
		number := "222"
		_, err := env.clients.UpdateClient(ctx, client.ID, UpdateClientInput{DocumentNumber: &number})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
		assert.Equal(t, "El número de documento ya está registrado", derr.Message)
	})

	t.Run("par completo duplicado es error de validación", func(t *testing.T) {
		docType := "dni"
		number := "222"
		_, err := env.clients.UpdateClient(ctx, client.ID, UpdateClientInput{
			DocumentType: &docType, DocumentNumber: &number,
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
	})
}

func TestClientService_DeleteClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	realEstateID, agentID := clientFixture(t, env)

	t.Run("bloqueado cuando tiene interacciones", func(t *testing.T) {
		client := env.createClient(t, realEstateID, agentID, "111")
		_, err := env.interactions.CreateInteraction(ctx, CreateClientInteractionInput{
			ClientID: client.ID, AgentID: agentID, Type: "call", Status: "completed",
		})
		require.NoError(t, err)

		err = env.clients.DeleteClient(ctx, client.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindConflict, derr.Kind)
		assert.Equal(t, "No se puede eliminar el cliente porque tiene interacciones asociadas", derr.Message)
	})

	t.Run("elimina un cliente sin interacciones", func(t *testing.T) {
		client := env.createClient(t, realEstateID, agentID, "444")
		require.NoError(t, env.clients.DeleteClient(ctx, client.ID))
	})
}

func TestClientService_GetClientStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	realEstateID, agentID := clientFixture(t, env)

	env.createClient(t, realEstateID, agentID, "111")
	env.createClient(t, realEstateID, agentID, "222")

	stats, err := env.clients.GetClientStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, int64(2), stats.ByStatus[0].Total)
	require.Len(t, stats.ByRealEstate, 1)
	assert.Equal(t, "Fixture", stats.ByRealEstate[0].RealEstateName)
}
