package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgClientNotFound = "Cliente no encontrado"
const msgDocumentDuplicated = "El número de documento ya está registrado"

// ClientService contiene la lógica de negocio de clientes
type ClientService struct {
	clientRepo      repositories.ClientRepository
	agentRepo       repositories.AgentRepository
	realEstateRepo  repositories.RealEstateRepository
	interactionRepo repositories.ClientInteractionRepository
	logger          ports.Logger
}

// NewClientService crea un nuevo ClientService
func NewClientService(
	clientRepo repositories.ClientRepository,
	agentRepo repositories.AgentRepository,
	realEstateRepo repositories.RealEstateRepository,
	interactionRepo repositories.ClientInteractionRepository,
	logger ports.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:      clientRepo,
		agentRepo:       agentRepo,
		realEstateRepo:  realEstateRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// CreateClientInput representa los datos para crear un cliente
type CreateClientInput struct {
	Name           string
	Email          string
	Phone          string
	DocumentType   string
	DocumentNumber string
	Address        *string
	RealEstateID   string
	AgentID        string
	Status         *string
}

// UpdateClientInput representa una actualización parcial de un cliente
type UpdateClientInput struct {
	Name           *string
	Email          *string
	Phone          *string
	DocumentType   *string
	DocumentNumber *string
	Address        *string
	RealEstateID   *string
	AgentID        *string
	Status         *string
}

// ListClients lista los clientes enriquecidos
func (s *ClientService) ListClients(ctx context.Context) ([]entities.ClientWithDetails, error) {
	return s.clientRepo.ListDetailed(ctx)
}

// ListClientsByAgent lista los clientes asignados a un agente
func (s *ClientService) ListClientsByAgent(ctx context.Context, agentID string) ([]entities.ClientWithDetails, error) {
	return s.clientRepo.ListDetailedByAgent(ctx, agentID)
}

// ListClientsByUser lista los clientes del agente que pertenece al usuario
func (s *ClientService) ListClientsByUser(ctx context.Context, userID string) ([]entities.ClientWithDetails, error) {
	return s.clientRepo.ListDetailedByUser(ctx, userID)
}

// GetClient busca un cliente por ID
func (s *ClientService) GetClient(ctx context.Context, id string) (*entities.ClientWithDetails, error) {
	client, err := s.clientRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.NotFound(msgClientNotFound)
	}
	return client, nil
}

// CreateClient crea un nuevo cliente
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*entities.ClientWithDetails, error) {
	s.logger.Info("creating client", "document", input.DocumentNumber)

	agentExists, err := s.agentRepo.Exists(ctx, input.AgentID)
	if err != nil {
		return nil, err
	}
	if !agentExists {
		return nil, errors.NotFound(msgAgentNotFound)
	}

	realEstateExists, err := s.realEstateRepo.Exists(ctx, input.RealEstateID)
	if err != nil {
		return nil, err
	}
	if !realEstateExists {
		return nil, errors.NotFound(msgRealEstateNotFound)
	}

	dup, err := s.clientRepo.ExistsByDocument(ctx, input.DocumentType, input.DocumentNumber, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, errors.Validation(msgDocumentDuplicated)
	}

	status := entities.ClientStatusActive
	if input.Status != nil {
		status = *input.Status
	}

	client := &entities.Client{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		Address:        input.Address,
		RealEstateID:   input.RealEstateID,
		AgentID:        input.AgentID,
		Status:         status,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgDocumentDuplicated)
		}
		return nil, err
	}

	return s.clientRepo.FindDetailedByID(ctx, client.ID)
}

// UpdateClient actualiza los campos presentes de un cliente. La unicidad
// del documento solo se reverifica cuando llegan tipo y número juntos.
func (s *ClientService) UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*entities.ClientWithDetails, error) {
	exists, err := s.clientRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgClientNotFound)
	}

	if input.AgentID != nil {
		agentExists, err := s.agentRepo.Exists(ctx, *input.AgentID)
		if err != nil {
			return nil, err
		}
		if !agentExists {
			return nil, errors.NotFound(msgAgentNotFound)
		}
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

	if input.DocumentType != nil && input.DocumentNumber != nil {
		dup, err := s.clientRepo.ExistsByDocument(ctx, *input.DocumentType, *input.DocumentNumber, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, errors.Validation(msgDocumentDuplicated)
		}
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.DocumentType != nil {
		fields["document_type"] = *input.DocumentType
	}
	if input.DocumentNumber != nil {
		fields["document_number"] = *input.DocumentNumber
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.RealEstateID != nil {
		fields["real_estate_id"] = *input.RealEstateID
	}
	if input.AgentID != nil {
		fields["agent_id"] = *input.AgentID
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if len(fields) > 0 {
		if err := s.clientRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgDocumentDuplicated)
			}
			return nil, err
		}
	}

	return s.clientRepo.FindDetailedByID(ctx, id)
}

// DeleteClient elimina un cliente sin interacciones registradas
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	exists, err := s.clientRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgClientNotFound)
	}

	interactions, err := s.interactionRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if interactions > 0 {
		return errors.Conflict("No se puede eliminar el cliente porque tiene interacciones asociadas")
	}

	rows, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgClientNotFound)
	}

	s.logger.Info("client deleted", "id", id)
	return nil
}

// GetClientStats devuelve los conteos globales agrupados de clientes
func (s *ClientService) GetClientStats(ctx context.Context) (*entities.ClientStats, error) {
	return s.clientRepo.Stats(ctx)
}
