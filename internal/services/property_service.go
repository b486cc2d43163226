package services

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgPropertyNotFound = "Propiedad no encontrada"
const msgPropertyRealEstateMissing = "La inmobiliaria especificada no existe"
const msgPropertyProjectMissing = "El proyecto especificado no existe"
const msgPropertyAgentMissing = "El agente especificado no existe"

// PropertyService contiene la lógica de negocio de propiedades
type PropertyService struct {
	propertyRepo   repositories.PropertyRepository
	realEstateRepo repositories.RealEstateRepository
	projectRepo    repositories.ProjectRepository
	agentRepo      repositories.AgentRepository
	viewRepo       repositories.PropertyViewRepository
	favoriteRepo   repositories.PropertyFavoriteRepository
	logger         ports.Logger
}

// NewPropertyService crea un nuevo PropertyService
func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	realEstateRepo repositories.RealEstateRepository,
	projectRepo repositories.ProjectRepository,
	agentRepo repositories.AgentRepository,
	viewRepo repositories.PropertyViewRepository,
	favoriteRepo repositories.PropertyFavoriteRepository,
	logger ports.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo:   propertyRepo,
		realEstateRepo: realEstateRepo,
		projectRepo:    projectRepo,
		agentRepo:      agentRepo,
		viewRepo:       viewRepo,
		favoriteRepo:   favoriteRepo,
		logger:         logger,
	}
}

// CreatePropertyInput representa los datos para crear una propiedad
type CreatePropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Address      string
	Type         string
	Status       *string
	RealEstateID string
	ProjectID    *string
	AgentID      *string
}

// UpdatePropertyInput representa una actualización parcial de una propiedad
type UpdatePropertyInput struct {
	Title        *string
	Description  *string
	Price        *float64
	Address      *string
	Type         *string
	Status       *string
	RealEstateID *string
	ProjectID    *string
	AgentID      *string
}

// ListProperties lista las propiedades enriquecidas
func (s *PropertyService) ListProperties(ctx context.Context) ([]entities.PropertyWithDetails, error) {
	return s.propertyRepo.ListDetailed(ctx)
}

// ListPropertiesByRealEstate lista las propiedades de una inmobiliaria
func (s *PropertyService) ListPropertiesByRealEstate(ctx context.Context, realEstateID string) ([]entities.PropertyWithDetails, error) {
	return s.propertyRepo.ListDetailedByRealEstate(ctx, realEstateID)
}

// ListPropertiesByProject lista las propiedades de un proyecto
func (s *PropertyService) ListPropertiesByProject(ctx context.Context, projectID string) ([]entities.PropertyWithDetails, error) {
	return s.propertyRepo.ListDetailedByProject(ctx, projectID)
}

// ListPropertiesByAgent lista las propiedades de un agente
func (s *PropertyService) ListPropertiesByAgent(ctx context.Context, agentID string) ([]entities.PropertyWithDetails, error) {
	return s.propertyRepo.ListDetailedByAgent(ctx, agentID)
}

// GetProperty busca una propiedad por ID
func (s *PropertyService) GetProperty(ctx context.Context, id string) (*entities.PropertyWithDetails, error) {
	property, err := s.propertyRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.NotFound(msgPropertyNotFound)
	}
	return property, nil
}

func (s *PropertyService) checkReferences(ctx context.Context, realEstateID, projectID, agentID *string) error {
	if realEstateID != nil {
		exists, err := s.realEstateRepo.Exists(ctx, *realEstateID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgPropertyRealEstateMissing)
		}
	}
	if projectID != nil {
		exists, err := s.projectRepo.Exists(ctx, *projectID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgPropertyProjectMissing)
		}
	}
	if agentID != nil {
		exists, err := s.agentRepo.Exists(ctx, *agentID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgPropertyAgentMissing)
		}
	}
	return nil
}

// CreateProperty crea una nueva propiedad
func (s *PropertyService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*entities.PropertyWithDetails, error) {
	s.logger.Info("creating property", "title", input.Title)

	if err := s.checkReferences(ctx, &input.RealEstateID, input.ProjectID, input.AgentID); err != nil {
		return nil, err
	}

	status := entities.PropertyStatusAvailable
	if input.Status != nil {
		status = *input.Status
	}

	property := &entities.Property{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Address:      input.Address,
		Type:         input.Type,
		Status:       status,
		RealEstateID: input.RealEstateID,
		ProjectID:    input.ProjectID,
		AgentID:      input.AgentID,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return s.propertyRepo.FindDetailedByID(ctx, property.ID)
}

// UpdateProperty actualiza los campos presentes de una propiedad
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, input UpdatePropertyInput) (*entities.PropertyWithDetails, error) {
	exists, err := s.propertyRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgPropertyNotFound)
	}

	if err := s.checkReferences(ctx, input.RealEstateID, input.ProjectID, input.AgentID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Type != nil {
		fields["type"] = *input.Type
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.RealEstateID != nil {
		fields["real_estate_id"] = *input.RealEstateID
	}
	if input.ProjectID != nil {
		fields["project_id"] = *input.ProjectID
	}
	if input.AgentID != nil {
		fields["agent_id"] = *input.AgentID
	}

	if len(fields) > 0 {
		if err := s.propertyRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.propertyRepo.FindDetailedByID(ctx, id)
}

// DeleteProperty elimina una propiedad sin vistas ni favoritos
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	exists, err := s.propertyRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgPropertyNotFound)
	}

	views, err := s.viewRepo.CountByProperty(ctx, id)
	if err != nil {
		return err
	}
	favorites, err := s.favoriteRepo.CountByProperty(ctx, id)
	if err != nil {
		return err
	}
	if views > 0 || favorites > 0 {
		return errors.Conflict("No se puede eliminar la propiedad porque tiene vistas o favoritos asociados")
	}

	rows, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgPropertyNotFound)
	}

	s.logger.Info("property deleted", "id", id)
	return nil
}

// GetPropertyStats devuelve el agregado global de propiedades
func (s *PropertyService) GetPropertyStats(ctx context.Context) (*entities.PropertyStats, error) {
	return s.propertyRepo.Stats(ctx)
}
