package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// PropertyFavoriteRepository implementa repositories.PropertyFavoriteRepository
type PropertyFavoriteRepository struct {
	db *gorm.DB
}

// NewPropertyFavoriteRepository crea un nuevo PropertyFavoriteRepository
func NewPropertyFavoriteRepository(db *gorm.DB) repositories.PropertyFavoriteRepository {
	return &PropertyFavoriteRepository{db: db}
}

const favoriteDetailSelect = `f.*,
	p.title AS property_title,
	p.address AS property_address,
	p.type AS property_type,
	p.status AS property_status,
	u.username AS user_name,
	u.email AS user_email,
	u.phone AS user_phone`

func (r *PropertyFavoriteRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("property_favorites f").
		Select(favoriteDetailSelect).
		Joins("LEFT JOIN properties p ON p.id = f.property_id").
		Joins("LEFT JOIN users u ON u.id = f.user_id")
}

func (r *PropertyFavoriteRepository) ListDetailed(ctx context.Context) ([]entities.PropertyFavoriteWithDetails, error) {
	rows := []entities.PropertyFavoriteWithDetails{}
	err := r.detailQuery(ctx).Order("f.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *PropertyFavoriteRepository) ListDetailedByUser(ctx context.Context, userID string) ([]entities.PropertyFavoriteWithDetails, error) {
	rows := []entities.PropertyFavoriteWithDetails{}
	err := r.detailQuery(ctx).
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyFavoriteRepository) ListDetailedByProperty(ctx context.Context, propertyID string) ([]entities.PropertyFavoriteWithDetails, error) {
	rows := []entities.PropertyFavoriteWithDetails{}
	err := r.detailQuery(ctx).
		Where("f.property_id = ?", propertyID).
		Order("f.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PropertyFavoriteRepository) FindDetailedByID(ctx context.Context, id string) (*entities.PropertyFavoriteWithDetails, error) {
	var row entities.PropertyFavoriteWithDetails

	res := r.detailQuery(ctx).Where("f.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *PropertyFavoriteRepository) Find(ctx context.Context, id string) (*entities.PropertyFavorite, error) {
	var model PropertyFavoriteModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.PropertyFavorite{
		ID:         model.ID,
		PropertyID: model.PropertyID,
		UserID:     model.UserID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}, nil
}

func (r *PropertyFavoriteRepository) ExistsPair(ctx context.Context, propertyID, userID, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&PropertyFavoriteModel{}).
		Where("property_id = ? AND user_id = ?", propertyID, userID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *PropertyFavoriteRepository) Create(ctx context.Context, favorite *entities.PropertyFavorite) error {
	model := &PropertyFavoriteModel{
		PropertyID: favorite.PropertyID,
		UserID:     favorite.UserID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	favorite.ID = model.ID
	favorite.CreatedAt = model.CreatedAt
	favorite.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PropertyFavoriteRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&PropertyFavoriteModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *PropertyFavoriteRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&PropertyFavoriteModel{})
	return res.RowsAffected, res.Error
}

func (r *PropertyFavoriteRepository) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PropertyFavoriteModel{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

func (r *PropertyFavoriteRepository) Stats(ctx context.Context) (*entities.PropertyFavoriteStats, error) {
	var stats entities.PropertyFavoriteStats
	err := getDB(ctx, r.db).Model(&PropertyFavoriteModel{}).
		Select(`COUNT(*) AS total_favorites,
			COUNT(DISTINCT user_id) AS unique_users,
			COUNT(DISTINCT property_id) AS unique_properties`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
