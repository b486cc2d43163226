package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
)

func TestProjectService_CreateProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	re := env.createRealEstate(t, "Horizonte")

	t.Run("crea y devuelve el proyecto enriquecido", func(t *testing.T) {
		project, err := env.projects.CreateProject(ctx, CreateProjectInput{
			Name:         "Torre Norte",
			Description:  "fase 1",
			RealEstateID: re.ID,
			Status:       "active",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, project.ID)
		require.NotNil(t, project.RealEstateName)
		assert.Equal(t, "Horizonte", *project.RealEstateName)
		assert.Zero(t, project.TotalProperties)
	})

	t.Run("inmobiliaria inexistente es not found", func(t *testing.T) {
		_, err := env.projects.CreateProject(ctx, CreateProjectInput{
			Name:         "Torre Sur",
			RealEstateID: "00000000-0000-0000-0000-000000000000",
			Status:       "active",
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Inmobiliaria no encontrada", derr.Message)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	re := env.createRealEstate(t, "Horizonte")
	project, err := env.projects.CreateProject(ctx, CreateProjectInput{
		Name:         "Torre Norte",
		Description:  "fase 1",
		RealEstateID: re.ID,
		Status:       "active",
	})
	require.NoError(t, err)

	t.Run("la actualización parcial conserva el resto", func(t *testing.T) {
		status := "completed"
		updated, err := env.projects.UpdateProject(ctx, project.ID, UpdateProjectInput{
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)
		assert.Equal(t, "Torre Norte", updated.Name)
		assert.Equal(t, "fase 1", updated.Description)
		assert.Equal(t, re.ID, updated.RealEstateID)
	})

	t.Run("proyecto inexistente es not found", func(t *testing.T) {
		name := "otro"
		_, err := env.projects.UpdateProject(ctx, "00000000-0000-0000-0000-000000000000", UpdateProjectInput{
			Name: &name,
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Proyecto no encontrado", derr.Message)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	re := env.createRealEstate(t, "Horizonte")
	project, err := env.projects.CreateProject(ctx, CreateProjectInput{
		Name:         "Torre Norte",
		RealEstateID: re.ID,
		Status:       "active",
	})
	require.NoError(t, err)

	_, err = env.properties.CreateProperty(ctx, CreatePropertyInput{
		Title:        "Piso 3A",
		Price:        120000,
		Address:      "Calle 5",
		Type:         "apartment",
		RealEstateID: re.ID,
		ProjectID:    &project.ID,
	})
	require.NoError(t, err)

	t.Run("con propiedades asociadas es conflicto", func(t *testing.T) {
		err := env.projects.DeleteProject(ctx, project.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindConflict, derr.Kind)
		assert.Equal(t, "No se puede eliminar el proyecto porque tiene propiedades asociadas", derr.Message)
	})

	t.Run("sin propiedades se elimina", func(t *testing.T) {
		empty, err := env.projects.CreateProject(ctx, CreateProjectInput{
			Name:         "Torre Sur",
			RealEstateID: re.ID,
			Status:       "active",
		})
		require.NoError(t, err)

		require.NoError(t, env.projects.DeleteProject(ctx, empty.ID))

		_, err = env.projects.GetProject(ctx, empty.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
	})
}

func TestProjectService_GetProjectStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	re := env.createRealEstate(t, "Horizonte")
	project, err := env.projects.CreateProject(ctx, CreateProjectInput{
		Name:         "Torre Norte",
		RealEstateID: re.ID,
		Status:       "active",
	})
	require.NoError(t, err)

	sold := entities.PropertyStatusSold
	_, err = env.properties.CreateProperty(ctx, CreatePropertyInput{
		Title: "Piso 1A", Price: 100000, Address: "Calle 5", Type: "apartment",
		RealEstateID: re.ID, ProjectID: &project.ID,
	})
	require.NoError(t, err)
	_, err = env.properties.CreateProperty(ctx, CreatePropertyInput{
		Title: "Piso 1B", Price: 110000, Address: "Calle 5", Type: "apartment",
		RealEstateID: re.ID, ProjectID: &project.ID,
	})
	require.NoError(t, err)
	_, err = env.properties.CreateProperty(ctx, CreatePropertyInput{
		Title: "Piso 2A", Price: 130000, Address: "Calle 5", Type: "apartment",
		Status: &sold, RealEstateID: re.ID, ProjectID: &project.ID,
	})
	require.NoError(t, err)

	t.Run("desglosa propiedades por estado", func(t *testing.T) {
		stats, err := env.projects.GetProjectStats(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalProperties)

		byStatus := map[string]int64{}
		for _, row := range stats.PropertiesByStatus {
			byStatus[row.Status] = row.Count
		}
		assert.Equal(t, int64(2), byStatus[entities.PropertyStatusAvailable])
		assert.Equal(t, int64(1), byStatus[entities.PropertyStatusSold])
	})

	t.Run("proyecto inexistente es not found", func(t *testing.T) {
		_, err := env.projects.GetProjectStats(ctx, "00000000-0000-0000-0000-000000000000")
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Proyecto no encontrado", derr.Message)
	})
}
