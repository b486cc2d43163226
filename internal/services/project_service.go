package services

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgProjectNotFound = "Proyecto no encontrado"

// ProjectService contiene la lógica de negocio de proyectos
type ProjectService struct {
	projectRepo    repositories.ProjectRepository
	realEstateRepo repositories.RealEstateRepository
	propertyRepo   repositories.PropertyRepository
	logger         ports.Logger
}

// NewProjectService crea un nuevo ProjectService
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	realEstateRepo repositories.RealEstateRepository,
	propertyRepo repositories.PropertyRepository,
	logger ports.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:    projectRepo,
		realEstateRepo: realEstateRepo,
		propertyRepo:   propertyRepo,
		logger:         logger,
	}
}

// CreateProjectInput representa los datos para crear un proyecto
type CreateProjectInput struct {
	Name         string
	Description  string
	RealEstateID string
	Status       string
}

// UpdateProjectInput representa una actualización parcial de un proyecto
type UpdateProjectInput struct {
	Name         *string
	Description  *string
	RealEstateID *string
	Status       *string
}

// ListProjects lista los proyectos enriquecidos
func (s *ProjectService) ListProjects(ctx context.Context) ([]entities.ProjectWithDetails, error) {
	return s.projectRepo.ListDetailed(ctx)
}

// ListProjectsByRealEstate lista los proyectos de una inmobiliaria
func (s *ProjectService) ListProjectsByRealEstate(ctx context.Context, realEstateID string) ([]entities.ProjectWithDetails, error) {
	return s.projectRepo.ListDetailedByRealEstate(ctx, realEstateID)
}

// GetProject busca un proyecto por ID
func (s *ProjectService) GetProject(ctx context.Context, id string) (*entities.ProjectWithDetails, error) {
	project, err := s.projectRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.NotFound(msgProjectNotFound)
	}
	return project, nil
}

// CreateProject crea un nuevo proyecto
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*entities.ProjectWithDetails, error) {
	s.logger.Info("creating project", "name", input.Name)

	realEstateExists, err := s.realEstateRepo.Exists(ctx, input.RealEstateID)
	if err != nil {
		return nil, err
	}
	if !realEstateExists {
		return nil, errors.NotFound(msgRealEstateNotFound)
	}

	project := &entities.Project{
		Name:         input.Name,
		Description:  input.Description,
		RealEstateID: input.RealEstateID,
		Status:       input.Status,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return s.projectRepo.FindDetailedByID(ctx, project.ID)
}

// UpdateProject actualiza los campos presentes de un proyecto
func (s *ProjectService) UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (*entities.ProjectWithDetails, error) {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgProjectNotFound)
	}

	if input.RealEstateID != nil {
		realEstateExists, err := s.realEstateRepo.Exists(ctx, *input.RealEstateID)
		if err != nil {
			return nil, err
		}
		if !realEstateExists {
			return nil, errors.NotFound(msgRealEstateNotFound)
		}
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.RealEstateID != nil {
		fields["real_estate_id"] = *input.RealEstateID
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if len(fields) > 0 {
		if err := s.projectRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.projectRepo.FindDetailedByID(ctx, id)
}

// DeleteProject elimina un proyecto sin propiedades asociadas
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgProjectNotFound)
	}

	properties, err := s.propertyRepo.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if properties > 0 {
		return errors.Conflict("No se puede eliminar el proyecto porque tiene propiedades asociadas")
	}

	rows, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgProjectNotFound)
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

// GetProjectStats devuelve el desglose de propiedades por estado
func (s *ProjectService) GetProjectStats(ctx context.Context, id string) (*entities.ProjectStats, error) {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgProjectNotFound)
	}

	byStatus, err := s.propertyRepo.StatusCountsByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	total, err := s.propertyRepo.CountByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entities.ProjectStats{
		PropertiesByStatus: byStatus,
		TotalProperties:    total,
	}, nil
}
