package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// PropertyFavoriteRepository define la persistencia de favoritos
type PropertyFavoriteRepository interface {
	ListDetailed(ctx context.Context) ([]entities.PropertyFavoriteWithDetails, error)
	ListDetailedByUser(ctx context.Context, userID string) ([]entities.PropertyFavoriteWithDetails, error)
	ListDetailedByProperty(ctx context.Context, propertyID string) ([]entities.PropertyFavoriteWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.PropertyFavoriteWithDetails, error)
	// Find devuelve la fila cruda; se usa para resolver el par efectivo
	// (property_id, user_id) en updates parciales.
	Find(ctx context.Context, id string) (*entities.PropertyFavorite, error)
	ExistsPair(ctx context.Context, propertyID, userID, excludeID string) (bool, error)
	Create(ctx context.Context, favorite *entities.PropertyFavorite) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByProperty(ctx context.Context, propertyID string) (int64, error)
	Stats(ctx context.Context) (*entities.PropertyFavoriteStats, error)
}
