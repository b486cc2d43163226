package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository crea un nuevo PropertyRepository
func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyDetailSelect = `p.*,
	re.name AS real_estate_name,
	pj.name AS project_name,
	u.username AS agent_name`

func (r *PropertyRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("properties p").
		Select(propertyDetailSelect).
		Joins("LEFT JOIN real_estates re ON re.id = p.real_estate_id").
		Joins("LEFT JOIN projects pj ON pj.id = p.project_id").
		Joins("LEFT JOIN agents a ON a.id = p.agent_id").
		Joins("LEFT JOIN users u ON u.id = a.user_id")
}

func (r *PropertyRepository) ListDetailed(ctx context.Context) ([]entities.PropertyWithDetails, error) {
	rows := []entities.PropertyWithDetails{}
	err := r.detailQuery(ctx).Order("p.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *PropertyRepository) ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.PropertyWithDetails, error) {
	rows := []entities.PropertyWithDetails{}
	err := r.detailQuery(ctx).
		Where("p.real_estate_id = ?", realEstateID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyRepository) ListDetailedByProject(ctx context.Context, projectID string) ([]entities.PropertyWithDetails, error) {
	rows := []entities.PropertyWithDetails{}
	err := r.detailQuery(ctx).
		Where("p.project_id = ?", projectID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyRepository) ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.PropertyWithDetails, error) {
	rows := []entities.PropertyWithDetails{}
	err := r.detailQuery(ctx).
		Where("p.agent_id = ?", agentID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyRepository) FindDetailedByID(ctx context.Context, id string) (*entities.PropertyWithDetails, error) {
	var row entities.PropertyWithDetails

	res := r.detailQuery(ctx).Where("p.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *PropertyRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	model := &PropertyModel{
		Title:        property.Title,
		Description:  property.Description,
		Price:        property.Price,
		Address:      property.Address,
		Type:         property.Type,
		Status:       property.Status,
		RealEstateID: property.RealEstateID,
		ProjectID:    property.ProjectID,
		AgentID:      property.AgentID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	property.ID = model.ID
	property.CreatedAt = model.CreatedAt
	property.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&PropertyModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&PropertyModel{})
	return res.RowsAffected, res.Error
}

func (r *PropertyRepository) CountByRealEstate(ctx context.Context, realEstateID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyModel{}).Where("real_estate_id = ?", realEstateID).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyModel{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyModel{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) StatusCountsByProject(ctx context.Context, projectID string) ([]entities.PropertyStatusCount, error) {
	rows := []entities.PropertyStatusCount{}
	err := getDB(ctx, r.db).Model(&PropertyModel{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyRepository) Stats(ctx context.Context) (*entities.PropertyStats, error) {
	var stats entities.PropertyStats
	err := getDB(ctx, r.db).Model(&PropertyModel{}).
		Select(`COUNT(*) AS total_properties,
			COUNT(DISTINCT real_estate_id) AS total_real_estates,
			COUNT(DISTINCT project_id) AS total_projects,
			COUNT(DISTINCT agent_id) AS total_agents,
			COUNT(CASE WHEN status = 'available' THEN 1 END) AS available_properties,
			COUNT(CASE WHEN status = 'sold' THEN 1 END) AS sold_properties,
			COUNT(CASE WHEN status = 'reserved' THEN 1 END) AS reserved_properties`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
