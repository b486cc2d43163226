package postgres

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/domain/entities"
	domainerrors "github.com/inmocrm/backend/internal/domain/errors"
)

func TestRealEstateRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRealEstateRepository(db)
	ctx := context.Background()

	t.Run("asigna ID y timestamps al crear", func(t *testing.T) {
		re := &entities.RealEstate{
			Name:    "Inmobiliaria Acme",
			Address: "Calle Falsa 123",
			Phone:   "555-0100",
			Email:   "contacto@acme.com",
		}
		require.NoError(t, repo.Create(ctx, re))
		assert.NotEmpty(t, re.ID)
		assert.False(t, re.CreatedAt.IsZero())
	})

	t.Run("nombre duplicado devuelve ErrDuplicated", func(t *testing.T) {
		re := &entities.RealEstate{
			Name:    "Inmobiliaria Acme",
			Address: "Otra calle 456",
			Phone:   "555-0200",
			Email:   "otro@acme.com",
		}
		err := repo.Create(ctx, re)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, domainerrors.ErrDuplicated))
	})
}

func TestRealEstateRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRealEstateRepository(db)
	ctx := context.Background()

	re := &entities.RealEstate{Name: "Habitat", Address: "Av. Sur 1", Phone: "555", Email: "h@h.com"}
	require.NoError(t, repo.Create(ctx, re))

	t.Run("encuentra el nombre existente", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Habitat", "")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excluye la propia fila en updates", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Habitat", re.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("nombre inexistente", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "NoExiste", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRealEstateRepository_FindDetailedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRealEstateRepository(db)
	ctx := context.Background()

	t.Run("devuelve nil sin error cuando no existe", func(t *testing.T) {
		row, err := repo.FindDetailedByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("calcula los totales agregados", func(t *testing.T) {
		re := &entities.RealEstate{Name: "Centro", Address: "Plaza 1", Phone: "555", Email: "c@c.com"}
		require.NoError(t, repo.Create(ctx, re))

		user := &entities.User{Username: "ana", Email: "ana@c.com", Password: "hash", Status: entities.UserStatusActive}
		require.NoError(t, NewUserRepository(db).Create(ctx, user))
		agent := &entities.Agent{UserID: user.ID, RealEstateID: &re.ID}
		require.NoError(t, NewAgentRepository(db).Create(ctx, agent))

		propRepo := NewPropertyRepository(db)
		for _, title := range []string{"Piso 1", "Piso 2"} {
			prop := &entities.Property{
				Title: title, Description: "d", Price: 100000,
				Address: "x", Type: "apartment", Status: entities.PropertyStatusAvailable,
				RealEstateID: re.ID,
			}
			require.NoError(t, propRepo.Create(ctx, prop))
		}

		row, err := repo.FindDetailedByID(ctx, re.ID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, int64(1), row.TotalAgents)
		assert.Equal(t, int64(2), row.TotalProperties)
	})
}

func TestRealEstateRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRealEstateRepository(db)
	ctx := context.Background()

	re := &entities.RealEstate{Name: "Efimera", Address: "x", Phone: "555", Email: "e@e.com"}
	require.NoError(t, repo.Create(ctx, re))

	t.Run("reporta filas afectadas", func(t *testing.T) {
		rows, err := repo.Delete(ctx, re.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("cero filas cuando ya no existe", func(t *testing.T) {
		rows, err := repo.Delete(ctx, re.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
