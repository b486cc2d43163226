package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgRealEstateNotFound = "Inmobiliaria no encontrada"
const msgRealEstateDuplicated = "Ya existe una inmobiliaria con ese nombre"

// RealEstateService contiene la lógica de negocio de inmobiliarias
type RealEstateService struct {
	realEstateRepo repositories.RealEstateRepository
	agentRepo      repositories.AgentRepository
	propertyRepo   repositories.PropertyRepository
	projectRepo    repositories.ProjectRepository
	logger         ports.Logger
}

// NewRealEstateService crea un nuevo RealEstateService
func NewRealEstateService(
	realEstateRepo repositories.RealEstateRepository,
	agentRepo repositories.AgentRepository,
	propertyRepo repositories.PropertyRepository,
	projectRepo repositories.ProjectRepository,
	logger ports.Logger,
) *RealEstateService {
	return &RealEstateService{
		realEstateRepo: realEstateRepo,
		agentRepo:      agentRepo,
		propertyRepo:   propertyRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// CreateRealEstateInput representa los datos para crear una inmobiliaria
type CreateRealEstateInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website *string
}

// UpdateRealEstateInput representa una actualización parcial; los campos
// nil conservan el valor almacenado.
type UpdateRealEstateInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Website *string
}

// ListRealEstates lista las inmobiliarias con sus totales agregados
func (s *RealEstateService) ListRealEstates(ctx context.Context) ([]entities.RealEstateWithDetails, error) {
	return s.realEstateRepo.ListDetailed(ctx)
}

// GetRealEstate busca una inmobiliaria por ID
func (s *RealEstateService) GetRealEstate(ctx context.Context, id string) (*entities.RealEstateWithDetails, error) {
	realEstate, err := s.realEstateRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if realEstate == nil {
		return nil, errors.NotFound(msgRealEstateNotFound)
	}
	return realEstate, nil
}

// CreateRealEstate crea una nueva inmobiliaria
func (s *RealEstateService) CreateRealEstate(ctx context.Context, input CreateRealEstateInput) (*entities.RealEstateWithDetails, error) {
	s.logger.Info("creating real estate", "name", input.Name)

	exists, err := s.realEstateRepo.ExistsByName(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Validation(msgRealEstateDuplicated)
	}

	realEstate := &entities.RealEstate{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		Website: input.Website,
	}
	if err := s.realEstateRepo.Create(ctx, realEstate); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgRealEstateDuplicated)
		}
		return nil, err
	}

	return s.realEstateRepo.FindDetailedByID(ctx, realEstate.ID)
}

// UpdateRealEstate actualiza los campos presentes de una inmobiliaria
func (s *RealEstateService) UpdateRealEstate(ctx context.Context, id string, input UpdateRealEstateInput) (*entities.RealEstateWithDetails, error) {
	exists, err := s.realEstateRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgRealEstateNotFound)
	}

	if input.Name != nil {
		dup, err := s.realEstateRepo.ExistsByName(ctx, *input.Name, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, errors.Validation(msgRealEstateDuplicated)
		}
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Website != nil {
		fields["website"] = *input.Website
	}

	if len(fields) > 0 {
		if err := s.realEstateRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgRealEstateDuplicated)
			}
			return nil, err
		}
	}

	return s.realEstateRepo.FindDetailedByID(ctx, id)
}

// DeleteRealEstate elimina una inmobiliaria sin dependientes
func (s *RealEstateService) DeleteRealEstate(ctx context.Context, id string) error {
	exists, err := s.realEstateRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgRealEstateNotFound)
	}

	agents, err := s.agentRepo.CountByRealEstate(ctx, id)
	if err != nil {
		return err
	}
	if agents > 0 {
		return errors.Conflict("No se puede eliminar la inmobiliaria porque tiene agentes asociados")
	}

	properties, err := s.propertyRepo.CountByRealEstate(ctx, id)
	if err != nil {
		return err
	}
	if properties > 0 {
		return errors.Conflict("No se puede eliminar la inmobiliaria porque tiene propiedades asociadas")
	}

	rows, err := s.realEstateRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgRealEstateNotFound)
	}

	s.logger.Info("real estate deleted", "id", id)
	return nil
}

// GetRealEstateStats devuelve los totales de una inmobiliaria
func (s *RealEstateService) GetRealEstateStats(ctx context.Context, id string) (*entities.RealEstateStats, error) {
	exists, err := s.realEstateRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgRealEstateNotFound)
	}

	projects, err := s.projectRepo.CountByRealEstate(ctx, id)
	if err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.CountByRealEstate(ctx, id)
	if err != nil {
		return nil, err
	}
	agents, err := s.agentRepo.CountByRealEstate(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entities.RealEstateStats{
		TotalProjects:   projects,
		TotalProperties: properties,
		TotalAgents:     agents,
	}, nil
}
