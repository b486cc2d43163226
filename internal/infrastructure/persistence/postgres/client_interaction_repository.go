package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// ClientInteractionRepository implementa repositories.ClientInteractionRepository
type ClientInteractionRepository struct {
	db *gorm.DB
}

// NewClientInteractionRepository crea un nuevo ClientInteractionRepository
func NewClientInteractionRepository(db *gorm.DB) repositories.ClientInteractionRepository {
	return &ClientInteractionRepository{db: db}
}

const interactionDetailSelect = `ci.*,
	c.document_number AS client_document,
	u.username AS agent_name,
	p.title AS property_title`

func (r *ClientInteractionRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("client_interactions ci").
		Select(interactionDetailSelect).
		Joins("LEFT JOIN clients c ON c.id = ci.client_id").
		Joins("LEFT JOIN agents a ON a.id = ci.agent_id").
		Joins("LEFT JOIN users u ON u.id = a.user_id").
		Joins("LEFT JOIN properties p ON p.id = ci.property_id")
}

func (r *ClientInteractionRepository) ListDetailed(ctx context.Context) ([]entities.ClientInteractionWithDetails, error) {
	rows := []entities.ClientInteractionWithDetails{}
	err := r.detailQuery(ctx).Order("ci.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *ClientInteractionRepository) ListDetailedByClient(ctx context.Context, clientID string) ([]entities.ClientInteractionWithDetails, error) {
	rows := []entities.ClientInteractionWithDetails{}
	err := r.detailQuery(ctx).
		Where("ci.client_id = ?", clientID).
		Order("ci.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ClientInteractionRepository) ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.ClientInteractionWithDetails, error) {
	rows := []entities.ClientInteractionWithDetails{}
	err := r.detailQuery(ctx).
		Where("ci.agent_id = ?", agentID).
		Order("ci.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ClientInteractionRepository) FindDetailedByID(ctx context.Context, id string) (*entities.ClientInteractionWithDetails, error) {
	var row entities.ClientInteractionWithDetails

	res := r.detailQuery(ctx).Where("ci.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *ClientInteractionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ClientInteractionModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ClientInteractionRepository) Create(ctx context.Context, interaction *entities.ClientInteraction) error {
	model := &ClientInteractionModel{
		ClientID:   interaction.ClientID,
		AgentID:    interaction.AgentID,
		PropertyID: interaction.PropertyID,
		Type:       interaction.Type,
		Status:     interaction.Status,
		Notes:      interaction.Notes,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	interaction.ID = model.ID
	interaction.CreatedAt = model.CreatedAt
	interaction.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ClientInteractionRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&ClientInteractionModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *ClientInteractionRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&ClientInteractionModel{})
	return res.RowsAffected, res.Error
}

func (r *ClientInteractionRepository) CountByClient(ctx context.Context, clientID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ClientInteractionModel{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}

func (r *ClientInteractionRepository) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ClientInteractionModel{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *ClientInteractionRepository) Stats(ctx context.Context) ([]entities.ClientInteractionStat, error) {
	rows := []entities.ClientInteractionStat{}
	err := getDB(ctx, r.db).Model(&ClientInteractionModel{}).
		Select(`COUNT(*) AS total_interactions,
			COUNT(DISTINCT client_id) AS unique_clients,
			COUNT(DISTINCT agent_id) AS unique_agents,
			COUNT(DISTINCT property_id) AS unique_properties,
			type,
			status`).
		Group("type, status").
		Order("total_interactions DESC").
		Scan(&rows).Error
	return rows, err
}
