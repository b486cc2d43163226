package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// ClientRepository implementa repositories.ClientRepository
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository crea un nuevo ClientRepository
func NewClientRepository(db *gorm.DB) repositories.ClientRepository {
	return &ClientRepository{db: db}
}

// Los datos de contacto del agente salen del usuario dueño del agente
const clientDetailSelect = `c.*,
	u.username AS agent_name,
	u.email AS agent_email,
	u.phone AS agent_phone,
	re.name AS real_estate_name,
	(SELECT COUNT(*) FROM client_interactions ci WHERE ci.client_id = c.id) AS total_interactions`

func (r *ClientRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("clients c").
		Select(clientDetailSelect).
		Joins("LEFT JOIN agents a ON a.id = c.agent_id").
		Joins("LEFT JOIN users u ON u.id = a.user_id").
		Joins("LEFT JOIN real_estates re ON re.id = c.real_estate_id")
}

func (r *ClientRepository) ListDetailed(ctx context.Context) ([]entities.ClientWithDetails, error) {
	rows := []entities.ClientWithDetails{}
	err := r.detailQuery(ctx).Order("c.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *ClientRepository) ListDetailedByAgent(ctx context.Context, agentID string) ([]entities.ClientWithDetails, error) {
	rows := []entities.ClientWithDetails{}
	err := r.detailQuery(ctx).
		Where("c.agent_id = ?", agentID).
		Order("c.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ClientRepository) ListDetailedByUser(ctx context.Context, userID string) ([]entities.ClientWithDetails, error) {
	rows := []entities.ClientWithDetails{}
	err := r.detailQuery(ctx).
		Where("a.user_id = ?", userID).
		Order("c.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ClientRepository) FindDetailedByID(ctx context.Context, id string) (*entities.ClientWithDetails, error) {
	var row entities.ClientWithDetails

	res := r.detailQuery(ctx).Where("c.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ClientModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ClientRepository) ExistsByDocument(ctx context.Context, documentType, documentNumber, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&ClientModel{}).
		Where("document_type = ? AND document_number = ?", documentType, documentNumber)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	model := &ClientModel{
		Name:           client.Name,
		Email:          client.Email,
		Phone:          client.Phone,
		DocumentType:   client.DocumentType,
		DocumentNumber: client.DocumentNumber,
		Address:        client.Address,
		RealEstateID:   client.RealEstateID,
		AgentID:        client.AgentID,
		Status:         client.Status,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	client.ID = model.ID
	client.CreatedAt = model.CreatedAt
	client.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&ClientModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&ClientModel{})
	return res.RowsAffected, res.Error
}

func (r *ClientRepository) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ClientModel{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *ClientRepository) Stats(ctx context.Context) (*entities.ClientStats, error) {
	db := getDB(ctx, r.db)
	stats := &entities.ClientStats{
		ByStatus:       []entities.ClientStatusCount{},
		ByDocumentType: []entities.ClientDocumentTypeCount{},
		ByRealEstate:   []entities.ClientRealEstateCount{},
	}

	err := db.Model(&ClientModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Order("total DESC").
		Scan(&stats.ByStatus).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&ClientModel{}).
		Select("document_type, COUNT(*) AS total").
		Group("document_type").
		Order("total DESC").
		Scan(&stats.ByDocumentType).Error
	if err != nil {
		return nil, err
	}

	err = db.Table("clients c").
		Select("re.name AS real_estate_name, COUNT(*) AS total").
		Joins("LEFT JOIN real_estates re ON re.id = c.real_estate_id").
		Group("re.name").
		Order("total DESC").
		Scan(&stats.ByRealEstate).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
