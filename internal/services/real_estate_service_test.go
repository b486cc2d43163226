package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/domain/errors"
)

func TestRealEstateService_CreateRealEstate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createRealEstate(t, "Acme")

	t.Run("nombre duplicado es error de validación", func(t *testing.T) {
		_, err := env.realEstates.CreateRealEstate(ctx, CreateRealEstateInput{
			Name: "Acme", Address: "Otra", Phone: "555", Email: "x@x.com",
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
		assert.Equal(t, "Ya existe una inmobiliaria con ese nombre", derr.Message)
	})
}

func TestRealEstateService_UpdateRealEstate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acme := env.createRealEstate(t, "Acme")
	env.createRealEstate(t, "Habitat")

	t.Run("puede conservar su propio nombre", func(t *testing.T) {
		name := "Acme"
		phone := "555-9999"
		updated, err := env.realEstates.UpdateRealEstate(ctx, acme.ID, UpdateRealEstateInput{
			Name: &name, Phone: &phone,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme", updated.Name)
		assert.Equal(t, "555-9999", updated.Phone)
	})

	t.Run("no puede tomar el nombre de otra", func(t *testing.T) {
		name := "Habitat"
		_, err := env.realEstates.UpdateRealEstate(ctx, acme.ID, UpdateRealEstateInput{Name: &name})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
	})

	t.Run("inexistente es not found", func(t *testing.T) {
		name := "x"
		_, err := env.realEstates.UpdateRealEstate(ctx, "00000000-0000-0000-0000-000000000000", UpdateRealEstateInput{Name: &name})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Inmobiliaria no encontrada", derr.Message)
	})
}

func TestRealEstateService_DeleteRealEstate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("bloqueado cuando tiene agentes", func(t *testing.T) {
		re := env.createRealEstate(t, "ConAgentes")
		user := env.createUser(t, "agente1", "agente1@mail.com")
		env.createAgent(t, user.ID, &re.ID)

		err := env.realEstates.DeleteRealEstate(ctx, re.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindConflict, derr.Kind)
		assert.Equal(t, "No se puede eliminar la inmobiliaria porque tiene agentes asociados", derr.Message)
	})

	t.Run("bloqueado cuando tiene propiedades", func(t *testing.T) {
		re := env.createRealEstate(t, "ConPropiedades")
		env.createProperty(t, re.ID, "Piso céntrico")

		err := env.realEstates.DeleteRealEstate(ctx, re.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindConflict, derr.Kind)
		assert.Equal(t, "No se puede eliminar la inmobiliaria porque tiene propiedades asociadas", derr.Message)
	})

	t.Run("elimina una inmobiliaria sin dependencias", func(t *testing.T) {
		re := env.createRealEstate(t, "Vacía")
		require.NoError(t, env.realEstates.DeleteRealEstate(ctx, re.ID))

		_, err := env.realEstates.GetRealEstate(ctx, re.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
	})
}

func TestRealEstateService_GetRealEstateStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	re := env.createRealEstate(t, "ConTodo")
	user := env.createUser(t, "agente1", "agente1@mail.com")
	env.createAgent(t, user.ID, &re.ID)
	env.createProperty(t, re.ID, "Piso 1")
	env.createProperty(t, re.ID, "Piso 2")

	_, err := env.projects.CreateProject(ctx, CreateProjectInput{
		Name: "Torre Norte", Description: "d", RealEstateID: re.ID, Status: "active",
	})
	require.NoError(t, err)

	stats, err := env.realEstates.GetRealEstateStats(ctx, re.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProjects)
	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, int64(1), stats.TotalAgents)

	t.Run("inexistente es not found", func(t *testing.T) {
		_, err := env.realEstates.GetRealEstateStats(ctx, "00000000-0000-0000-0000-000000000000")
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
	})
}
