package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// RealEstateRepository define la persistencia de inmobiliarias
type RealEstateRepository interface {
	ListDetailed(ctx context.Context) ([]entities.RealEstateWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.RealEstateWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ExistsByName ignora la fila excludeID cuando no es vacío,
	// para las verificaciones de unicidad en updates.
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, realEstate *entities.RealEstate) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
}
