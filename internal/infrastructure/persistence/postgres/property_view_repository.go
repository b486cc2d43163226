package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// PropertyViewRepository implementa repositories.PropertyViewRepository
type PropertyViewRepository struct {
	db *gorm.DB
}

// NewPropertyViewRepository crea un nuevo PropertyViewRepository
func NewPropertyViewRepository(db *gorm.DB) repositories.PropertyViewRepository {
	return &PropertyViewRepository{db: db}
}

// El visitante puede ser usuario, cliente o agente; se enriquecen los tres
const viewDetailSelect = `v.*,
	p.title AS property_title,
	p.address AS property_address,
	p.type AS property_type,
	p.status AS property_status,
	u.username AS user_name,
	u.email AS user_email,
	u.phone AS user_phone,
	c.name AS client_name,
	c.email AS client_email,
	c.phone AS client_phone,
	au.username AS agent_name,
	au.email AS agent_email,
	au.phone AS agent_phone`

func (r *PropertyViewRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("property_views v").
		Select(viewDetailSelect).
		Joins("LEFT JOIN properties p ON p.id = v.property_id").
		Joins("LEFT JOIN users u ON u.id = v.user_id").
		Joins("LEFT JOIN clients c ON c.id = v.client_id").
		Joins("LEFT JOIN agents a ON a.id = v.agent_id").
		Joins("LEFT JOIN users au ON au.id = a.user_id")
}

func (r *PropertyViewRepository) ListDetailed(ctx context.Context) ([]entities.PropertyViewWithDetails, error) {
	rows := []entities.PropertyViewWithDetails{}
	err := r.detailQuery(ctx).Order("v.view_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *PropertyViewRepository) ListDetailedByProperty(ctx context.Context, propertyID string) ([]entities.PropertyViewWithDetails, error) {
	rows := []entities.PropertyViewWithDetails{}
	err := r.detailQuery(ctx).
		Where("v.property_id = ?", propertyID).
		Order("v.view_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyViewRepository) ListDetailedByClient(ctx context.Context, clientID string) ([]entities.PropertyViewWithDetails, error) {
	rows := []entities.PropertyViewWithDetails{}
	err := r.detailQuery(ctx).
		Where("v.client_id = ?", clientID).
		Order("v.view_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyViewRepository) ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.PropertyViewWithDetails, error) {
	rows := []entities.PropertyViewWithDetails{}
	err := r.detailQuery(ctx).
		Where("v.agent_id = ?", agentID).
		Order("v.view_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyViewRepository) FindDetailedByID(ctx context.Context, id string) (*entities.PropertyViewWithDetails, error) {
	var row entities.PropertyViewWithDetails

	res := r.detailQuery(ctx).Where("v.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *PropertyViewRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyViewModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PropertyViewRepository) Create(ctx context.Context, view *entities.PropertyView) error {
	model := &PropertyViewModel{
		PropertyID: view.PropertyID,
		UserID:     view.UserID,
		ClientID:   view.ClientID,
		AgentID:    view.AgentID,
		Source:     view.Source,
		IPAddress:  view.IPAddress,
		ViewDate:   view.ViewDate,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	view.ID = model.ID
	view.CreatedAt = model.CreatedAt
	view.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PropertyViewRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&PropertyViewModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *PropertyViewRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&PropertyViewModel{})
	return res.RowsAffected, res.Error
}

func (r *PropertyViewRepository) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyViewModel{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

func (r *PropertyViewRepository) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyViewModel{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

// DailyStats usa to_char de PostgreSQL para truncar la fecha al día
func (r *PropertyViewRepository) DailyStats(ctx context.Context) ([]entities.PropertyViewDailyStat, error) {
	rows := []entities.PropertyViewDailyStat{}
	err := getDB(ctx, r.db).Model(&PropertyViewModel{}).
		Select(`COUNT(*) AS total_views,
			COUNT(DISTINCT property_id) AS unique_properties,
			COUNT(DISTINCT client_id) AS unique_clients,
			COUNT(DISTINCT agent_id) AS unique_agents,
			to_char(view_date, 'YYYY-MM-DD') AS view_date`).
		Group("to_char(view_date, 'YYYY-MM-DD')").
		Order("to_char(view_date, 'YYYY-MM-DD') DESC").
		Limit(30).
		Scan(&rows).Error
	return rows, err
}
