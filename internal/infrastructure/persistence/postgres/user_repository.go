package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository crea un nuevo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("users u").
		Select("u.*, r.name AS role_name").
		Joins("LEFT JOIN roles r ON r.id = u.role_id")
}

func (r *UserRepository) ListDetailed(ctx context.Context) ([]entities.UserWithDetails, error) {
	rows := []entities.UserWithDetails{}
	err := r.detailQuery(ctx).Order("u.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) FindDetailedByID(ctx context.Context, id string) (*entities.UserWithDetails, error) {
	var row entities.UserWithDetails

	res := r.detailQuery(ctx).Where("u.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.UserWithDetails, error) {
	var row entities.UserWithDetails

	res := r.detailQuery(ctx).Where("u.email = ?", email).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&UserModel{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := &UserModel{
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
		Phone:    user.Phone,
		RoleID:   user.RoleID,
		Status:   user.Status,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&UserModel{})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) CountByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&UserModel{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
