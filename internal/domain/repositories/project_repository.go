package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// ProjectRepository define la persistencia de proyectos
type ProjectRepository interface {
	ListDetailed(ctx context.Context) ([]entities.ProjectWithDetails, error)
	ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.ProjectWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.ProjectWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, project *entities.Project) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByRealEstate(ctx context.Context, realEstateID string) (int64, error)
}
