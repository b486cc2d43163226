package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// ClientRepository define la persistencia de clientes
type ClientRepository interface {
	ListDetailed(ctx context.Context) ([]entities.ClientWithDetails, error)
	ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.ClientWithDetails, error)
	// ListDetailedByUser filtra por el usuario dueño del agente asignado
	ListDetailedByUser(ctx context.Context, userID string) ([]entities.ClientWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.ClientWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByDocument(ctx context.Context, documentType, documentNumber, excludeID string) (bool, error)
	Create(ctx context.Context, client *entities.Client) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
	Stats(ctx context.Context) (*entities.ClientStats, error)
}
