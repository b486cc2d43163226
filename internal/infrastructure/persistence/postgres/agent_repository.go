package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// AgentRepository implementa repositories.AgentRepository
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository crea un nuevo AgentRepository
func NewAgentRepository(db *gorm.DB) repositories.AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("agents a").
		Select("a.*, u.username AS user_name, u.email AS user_email, re.name AS real_estate_name").
		Joins("LEFT JOIN users u ON u.id = a.user_id").
		Joins("LEFT JOIN real_estates re ON re.id = a.real_estate_id")
}

func (r *AgentRepository) ListDetailed(ctx context.Context) ([]entities.AgentWithDetails, error) {
	rows := []entities.AgentWithDetails{}
	err := r.detailQuery(ctx).Order("a.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *AgentRepository) ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.AgentWithDetails, error) {
	rows := []entities.AgentWithDetails{}
	err := r.detailQuery(ctx).
		Where("a.real_estate_id = ?", realEstateID).
		Order("a.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *AgentRepository) FindDetailedByID(ctx context.Context, id string) (*entities.AgentWithDetails, error) {
	var row entities.AgentWithDetails

	res := r.detailQuery(ctx).Where("a.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *AgentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AgentModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AgentRepository) ExistsByUser(ctx context.Context, userID, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&AgentModel{}).Where("user_id = ?", userID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *AgentRepository) Create(ctx context.Context, agent *entities.Agent) error {
	model := &AgentModel{
		UserID:       agent.UserID,
		RealEstateID: agent.RealEstateID,
		Phone:        agent.Phone,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	agent.ID = model.ID
	agent.CreatedAt = model.CreatedAt
	agent.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AgentRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&AgentModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *AgentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&AgentModel{})
	return res.RowsAffected, res.Error
}

func (r *AgentRepository) CountByRealEstate(ctx context.Context, realEstateID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AgentModel{}).Where("real_estate_id = ?", realEstateID).Count(&count).Error
	return count, err
}

func (r *AgentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AgentModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
