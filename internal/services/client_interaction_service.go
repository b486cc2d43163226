package services

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgInteractionNotFound = "Interacción no encontrada"

// ClientInteractionService contiene la lógica de negocio de interacciones
type ClientInteractionService struct {
	interactionRepo repositories.ClientInteractionRepository
	clientRepo      repositories.ClientRepository
	agentRepo       repositories.AgentRepository
	propertyRepo    repositories.PropertyRepository
	logger          ports.Logger
}

// NewClientInteractionService crea un nuevo ClientInteractionService
func NewClientInteractionService(
	interactionRepo repositories.ClientInteractionRepository,
	clientRepo repositories.ClientRepository,
	agentRepo repositories.AgentRepository,
	propertyRepo repositories.PropertyRepository,
	logger ports.Logger,
) *ClientInteractionService {
	return &ClientInteractionService{
		interactionRepo: interactionRepo,
		clientRepo:      clientRepo,
		agentRepo:       agentRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

// CreateClientInteractionInput representa los datos para crear una interacción
type CreateClientInteractionInput struct {
	ClientID   string
	AgentID    string
	PropertyID *string
	Type       string
	Status     string
	Notes      *string
}

// UpdateClientInteractionInput representa una actualización parcial
type UpdateClientInteractionInput struct {
	ClientID   *string
	AgentID    *string
	PropertyID *string
	Type       *string
	Status     *string
	Notes      *string
}

// ListInteractions lista las interacciones enriquecidas
func (s *ClientInteractionService) ListInteractions(ctx context.Context) ([]entities.ClientInteractionWithDetails, error) {
	return s.interactionRepo.ListDetailed(ctx)
}

// ListInteractionsByClient lista las interacciones de un cliente
func (s *ClientInteractionService) ListInteractionsByClient(ctx context.Context, clientID string) ([]entities.ClientInteractionWithDetails, error) {
	return s.interactionRepo.ListDetailedByClient(ctx, clientID)
}

// ListInteractionsByAgent lista las interacciones de un agente
func (s *ClientInteractionService) ListInteractionsByAgent(ctx context.Context, agentID string) ([]entities.ClientInteractionWithDetails, error) {
	return s.interactionRepo.ListDetailedByAgent(ctx, agentID)
}

// GetInteraction busca una interacción por ID
func (s *ClientInteractionService) GetInteraction(ctx context.Context, id string) (*entities.ClientInteractionWithDetails, error) {
	interaction, err := s.interactionRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, errors.NotFound(msgInteractionNotFound)
	}
	return interaction, nil
}

// CreateInteraction registra una interacción entre agente y cliente
func (s *ClientInteractionService) CreateInteraction(ctx context.Context, input CreateClientInteractionInput) (*entities.ClientInteractionWithDetails, error) {
	clientExists, err := s.clientRepo.Exists(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if !clientExists {
		return nil, errors.NotFound(msgClientNotFound)
	}

	agentExists, err := s.agentRepo.Exists(ctx, input.AgentID)
	if err != nil {
		return nil, err
	}
	if !agentExists {
		return nil, errors.NotFound(msgAgentNotFound)
	}

	if input.PropertyID != nil {
		propertyExists, err := s.propertyRepo.Exists(ctx, *input.PropertyID)
		if err != nil {
			return nil, err
		}
		if !propertyExists {
			return nil, errors.NotFound(msgPropertyNotFound)
		}
	}

	interaction := &entities.ClientInteraction{
		ClientID:   input.ClientID,
		AgentID:    input.AgentID,
		PropertyID: input.PropertyID,
		Type:       input.Type,
		Status:     input.Status,
		Notes:      input.Notes,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	return s.interactionRepo.FindDetailedByID(ctx, interaction.ID)
}

// UpdateInteraction actualiza los campos presentes de una interacción
func (s *ClientInteractionService) UpdateInteraction(ctx context.Context, id string, input UpdateClientInteractionInput) (*entities.ClientInteractionWithDetails, error) {
	exists, err := s.interactionRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgInteractionNotFound)
	}

	if input.ClientID != nil {
		clientExists, err := s.clientRepo.Exists(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if !clientExists {
			return nil, errors.NotFound(msgClientNotFound)
		}
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
	if input.PropertyID != nil {
		propertyExists, err := s.propertyRepo.Exists(ctx, *input.PropertyID)
		if err != nil {
			return nil, err
		}
		if !propertyExists {
			return nil, errors.NotFound(msgPropertyNotFound)
		}
	}

	fields := map[string]any{}
	if input.ClientID != nil {
		fields["client_id"] = *input.ClientID
	}
	if input.AgentID != nil {
		fields["agent_id"] = *input.AgentID
	}
	if input.PropertyID != nil {
		fields["property_id"] = *input.PropertyID
	}
	if input.Type != nil {
		fields["type"] = *input.Type
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if len(fields) > 0 {
		if err := s.interactionRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.interactionRepo.FindDetailedByID(ctx, id)
}

// DeleteInteraction elimina una interacción
func (s *ClientInteractionService) DeleteInteraction(ctx context.Context, id string) error {
	rows, err := s.interactionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgInteractionNotFound)
	}
	return nil
}

// GetInteractionStats devuelve el agregado por tipo y estado
func (s *ClientInteractionService) GetInteractionStats(ctx context.Context) ([]entities.ClientInteractionStat, error) {
	return s.interactionRepo.Stats(ctx)
}
