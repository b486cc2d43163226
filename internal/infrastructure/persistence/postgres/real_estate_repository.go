package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// RealEstateRepository implementa repositories.RealEstateRepository
type RealEstateRepository struct {
	db *gorm.DB
}

// NewRealEstateRepository crea un nuevo RealEstateRepository
func NewRealEstateRepository(db *gorm.DB) repositories.RealEstateRepository {
	return &RealEstateRepository{db: db}
}

const realEstateDetailSelect = `re.*,
	COUNT(DISTINCT a.id) AS total_agents,
	COUNT(DISTINCT p.id) AS total_properties`

func (r *RealEstateRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("real_estates re").
		Select(realEstateDetailSelect).
		Joins("LEFT JOIN agents a ON a.real_estate_id = re.id").
		Joins("LEFT JOIN properties p ON p.real_estate_id = re.id").
		Group("re.id")
}

func (r *RealEstateRepository) ListDetailed(ctx context.Context) ([]entities.RealEstateWithDetails, error) {
	rows := []entities.RealEstateWithDetails{}
	err := r.detailQuery(ctx).Order("re.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *RealEstateRepository) FindDetailedByID(ctx context.Context, id string) (*entities.RealEstateWithDetails, error) {
	var row entities.RealEstateWithDetails

	res := r.detailQuery(ctx).Where("re.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *RealEstateRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&RealEstateModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RealEstateRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&RealEstateModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *RealEstateRepository) Create(ctx context.Context, realEstate *entities.RealEstate) error {
	model := &RealEstateModel{
		Name:    realEstate.Name,
		Address: realEstate.Address,
		Phone:   realEstate.Phone,
		Email:   realEstate.Email,
		Website: realEstate.Website,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	realEstate.ID = model.ID
	realEstate.CreatedAt = model.CreatedAt
	realEstate.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RealEstateRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&RealEstateModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *RealEstateRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&RealEstateModel{})
	return res.RowsAffected, res.Error
}
