package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// ClientInteractionRepository define la persistencia de interacciones
type ClientInteractionRepository interface {
	ListDetailed(ctx context.Context) ([]entities.ClientInteractionWithDetails, error)
	ListDetailedByClient(ctx context.Context, clientID string) ([]entities.ClientInteractionWithDetails, error)
	ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.ClientInteractionWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.ClientInteractionWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, interaction *entities.ClientInteraction) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByClient(ctx context.Context, clientID string) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
	Stats(ctx context.Context) ([]entities.ClientInteractionStat, error)
}
