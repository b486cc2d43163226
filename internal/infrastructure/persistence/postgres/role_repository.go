package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// RoleRepository implementa repositories.RoleRepository
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository crea un nuevo RoleRepository
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]entities.Role, error) {
	var models []RoleModel
	if err := getDB(ctx, r.db).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	roles := make([]entities.Role, 0, len(models))
	for i := range models {
		roles = append(roles, *r.toEntity(&models[i]))
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*entities.Role, error) {
	var model RoleModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *RoleRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&RoleModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RoleRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&RoleModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *RoleRepository) Create(ctx context.Context, role *entities.Role) error {
	model := &RoleModel{
		Name:        role.Name,
		Description: role.Description,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	role.ID = model.ID
	role.CreatedAt = model.CreatedAt
	role.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RoleRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&RoleModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *RoleRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&RoleModel{})
	return res.RowsAffected, res.Error
}

func (r *RoleRepository) Permissions(ctx context.Context, roleID string) ([]entities.PermissionWithModule, error) {
	rows := []entities.PermissionWithModule{}
	err := getDB(ctx, r.db).
		Table("role_permissions rp").
		Select("DISTINCT p.*, m.name AS module_name").
		Joins("JOIN permissions p ON p.id = rp.permission_id").
		Joins("JOIN modules m ON m.id = rp.module_id").
		Where("rp.role_id = ?", roleID).
		Order("m.name, p.name").
		Scan(&rows).Error
	return rows, err
}

func (r *RoleRepository) DeletePermissions(ctx context.Context, roleID string) error {
	return getDB(ctx, r.db).Where("role_id = ?", roleID).Delete(&RolePermissionModel{}).Error
}

func (r *RoleRepository) InsertPermission(ctx context.Context, roleID string, assignment entities.PermissionAssignment) error {
	model := &RolePermissionModel{
		RoleID:       roleID,
		PermissionID: assignment.PermissionID,
		ModuleID:     assignment.ModuleID,
	}
	return translateError(getDB(ctx, r.db).Create(model).Error)
}

func (r *RoleRepository) toEntity(model *RoleModel) *entities.Role {
	return &entities.Role{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
