package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// PropertyViewRepository define la persistencia de visitas a propiedades
type PropertyViewRepository interface {
	ListDetailed(ctx context.Context) ([]entities.PropertyViewWithDetails, error)
	ListDetailedByProperty(ctx context.Context, propertyID string) ([]entities.PropertyViewWithDetails, error)
	ListDetailedByClient(ctx context.Context, clientID string) ([]entities.PropertyViewWithDetails, error)
	ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.PropertyViewWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.PropertyViewWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, view *entities.PropertyView) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByProperty(ctx context.Context, propertyID string) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
	// DailyStats agrega las visitas por día, últimos 30 días con actividad
	DailyStats(ctx context.Context) ([]entities.PropertyViewDailyStat, error)
}
