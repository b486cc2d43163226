package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

// ProjectRepository implementa repositories.ProjectRepository
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository crea un nuevo ProjectRepository
func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectDetailSelect = `p.*,
	re.name AS real_estate_name,
	(SELECT COUNT(*) FROM properties pr WHERE pr.project_id = p.id) AS total_properties`

func (r *ProjectRepository) detailQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("projects p").
		Select(projectDetailSelect).
		Joins("LEFT JOIN real_estates re ON re.id = p.real_estate_id")
}

func (r *ProjectRepository) ListDetailed(ctx context.Context) ([]entities.ProjectWithDetails, error) {
	rows := []entities.ProjectWithDetails{}
	err := r.detailQuery(ctx).Order("p.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *ProjectRepository) ListDetailedByRealEstate(ctx context.Context, realEstateID string) ([]entities.ProjectWithDetails, error) {
	rows := []entities.ProjectWithDetails{}
	err := r.detailQuery(ctx).
		Where("p.real_estate_id = ?", realEstateID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProjectRepository) FindDetailedByID(ctx context.Context, id string) (*entities.ProjectWithDetails, error) {
	var row entities.ProjectWithDetails

	res := r.detailQuery(ctx).Where("p.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ProjectModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	model := &ProjectModel{
		Name:         project.Name,
		Description:  project.Description,
		RealEstateID: project.RealEstateID,
		Status:       project.Status,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	project.ID = model.ID
	project.CreatedAt = model.CreatedAt
	project.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return translateError(getDB(ctx, r.db).Model(&ProjectModel{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&ProjectModel{})
	return res.RowsAffected, res.Error
}

func (r *ProjectRepository) CountByRealEstate(ctx context.Context, realEstateID string) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ProjectModel{}).Where("real_estate_id = ?", realEstateID).Count(&count).Error
	return count, err
}
