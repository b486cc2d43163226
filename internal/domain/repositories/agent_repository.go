package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// AgentRepository define la persistencia de agentes
type AgentRepository interface {
	ListDetailed(ctx context.Context) ([]entities.AgentWithDetails, error)
	ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.AgentWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.AgentWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByUser(ctx context.Context, userID, excludeID string) (bool, error)
	Create(ctx context.Context, agent *entities.Agent) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByRealEstate(ctx context.Context, realEstateID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
