package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// PropertyRepository define la persistencia de propiedades
type PropertyRepository interface {
	ListDetailed(ctx context.Context) ([]entities.PropertyWithDetails, error)
	ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.PropertyWithDetails, error)
	ListDetailedByProject(ctx context.Context, projectID string) ([]entities.PropertyWithDetails, error)
	ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.PropertyWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.PropertyWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, property *entities.Property) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByRealEstate(ctx context.Context, realEstateID string) (int64, error)
	CountByProject(ctx context.Context, projectID string) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
	StatusCountsByProject(ctx context.Context, projectID string) ([]entities.PropertyStatusCount, error)
	Stats(ctx context.Context) (*entities.PropertyStats, error)
}
