package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgAgentNotFound = "Agente no encontrado"
const msgAgentDuplicated = "Ya existe un agente para este usuario"

// AgentService contiene la lógica de negocio de agentes
type AgentService struct {
	agentRepo       repositories.AgentRepository
	userRepo        repositories.UserRepository
	realEstateRepo  repositories.RealEstateRepository
	clientRepo      repositories.ClientRepository
	viewRepo        repositories.PropertyViewRepository
	interactionRepo repositories.ClientInteractionRepository
	logger          ports.Logger
}

// NewAgentService crea un nuevo AgentService
func NewAgentService(
	agentRepo repositories.AgentRepository,
	userRepo repositories.UserRepository,
	realEstateRepo repositories.RealEstateRepository,
	clientRepo repositories.ClientRepository,
	viewRepo repositories.PropertyViewRepository,
	interactionRepo repositories.ClientInteractionRepository,
	logger ports.Logger,
) *AgentService {
	return &AgentService{
		agentRepo:       agentRepo,
		userRepo:        userRepo,
		realEstateRepo:  realEstateRepo,
		clientRepo:      clientRepo,
		viewRepo:        viewRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// CreateAgentInput representa los datos para crear un agente
type CreateAgentInput struct {
	UserID       string
	RealEstateID *string
	Phone        *string
}

// UpdateAgentInput representa una actualización parcial de un agente
type UpdateAgentInput struct {
	UserID       *string
	RealEstateID *string
	Phone        *string
}

// ListAgents lista los agentes con usuario e inmobiliaria
func (s *AgentService) ListAgents(ctx context.Context) ([]entities.AgentWithDetails, error) {
	return s.agentRepo.ListDetailed(ctx)
}

// ListAgentsByRealEstate lista los agentes de una inmobiliaria
func (s *AgentService) ListAgentsByRealEstate(ctx context.Context, realEstateID string) ([]entities.AgentWithDetails, error) {
	return s.agentRepo.ListDetailedByRealEstate(ctx, realEstateID)
}

// GetAgent busca un agente por ID
func (s *AgentService) GetAgent(ctx context.Context, id string) (*entities.AgentWithDetails, error) {
	agent, err := s.agentRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, errors.NotFound(msgAgentNotFound)
	}
	return agent, nil
}

// CreateAgent crea un nuevo agente ligado a un usuario existente
func (s *AgentService) CreateAgent(ctx context.Context, input CreateAgentInput) (*entities.AgentWithDetails, error) {
	s.logger.Info("creating agent", "user_id", input.UserID)

	userExists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, errors.NotFound(msgUserNotFound)
	}

	taken, err := s.agentRepo.ExistsByUser(ctx, input.UserID, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.Validation(msgAgentDuplicated)
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

	agent := &entities.Agent{
		UserID:       input.UserID,
		RealEstateID: input.RealEstateID,
		Phone:        input.Phone,
	}
	if err := s.agentRepo.Create(ctx, agent); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgAgentDuplicated)
		}
		return nil, err
	}

	return s.agentRepo.FindDetailedByID(ctx, agent.ID)
}

// UpdateAgent actualiza los campos presentes de un agente
func (s *AgentService) UpdateAgent(ctx context.Context, id string, input UpdateAgentInput) (*entities.AgentWithDetails, error) {
	exists, err := s.agentRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgAgentNotFound)
	}

	if input.UserID != nil {
		userExists, err := s.userRepo.Exists(ctx, *input.UserID)
		if err != nil {
			return nil, err
		}
		if !userExists {
			return nil, errors.NotFound(msgUserNotFound)
		}

		taken, err := s.agentRepo.ExistsByUser(ctx, *input.UserID, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.Validation(msgAgentDuplicated)
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

	fields := map[string]any{}
	if input.UserID != nil {
		fields["user_id"] = *input.UserID
	}
	if input.RealEstateID != nil {
		fields["real_estate_id"] = *input.RealEstateID
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}

	if len(fields) > 0 {
		if err := s.agentRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgAgentDuplicated)
			}
			return nil, err
		}
	}

	return s.agentRepo.FindDetailedByID(ctx, id)
}

// DeleteAgent elimina un agente. El borrado no tiene guardas: los
// clientes conservan su agent_id colgante, igual que el sistema previo.
func (s *AgentService) DeleteAgent(ctx context.Context, id string) error {
	rows, err := s.agentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgAgentNotFound)
	}

	s.logger.Info("agent deleted", "id", id)
	return nil
}

// GetAgentStats devuelve los totales de actividad de un agente
func (s *AgentService) GetAgentStats(ctx context.Context, id string) (*entities.AgentStats, error) {
	exists, err := s.agentRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgAgentNotFound)
	}

	clients, err := s.clientRepo.CountByAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	visits, err := s.viewRepo.CountByAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	interactions, err := s.interactionRepo.CountByAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entities.AgentStats{
		TotalClients:      clients,
		TotalVisits:       visits,
		TotalInteractions: interactions,
	}, nil
}
