package services

import (
	"context"
	"time"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgViewNotFound = "Vista no encontrada"

// PropertyViewService contiene la lógica de negocio de visitas
type PropertyViewService struct {
	viewRepo     repositories.PropertyViewRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	clientRepo   repositories.ClientRepository
	agentRepo    repositories.AgentRepository
	logger       ports.Logger
}

// NewPropertyViewService crea un nuevo PropertyViewService
func NewPropertyViewService(
	viewRepo repositories.PropertyViewRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	agentRepo repositories.AgentRepository,
	logger ports.Logger,
) *PropertyViewService {
	return &PropertyViewService{
		viewRepo:     viewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		agentRepo:    agentRepo,
		logger:       logger,
	}
}

// CreatePropertyViewInput representa los datos para registrar una visita
type CreatePropertyViewInput struct {
	PropertyID string
	UserID     *string
	ClientID   *string
	AgentID    *string
	Source     string
	IPAddress  string
}

// UpdatePropertyViewInput representa una actualización parcial de una visita
type UpdatePropertyViewInput struct {
	PropertyID *string
	UserID     *string
	ClientID   *string
	AgentID    *string
	Source     *string
	IPAddress  *string
}

// ListViews lista las visitas, más recientes primero
func (s *PropertyViewService) ListViews(ctx context.Context) ([]entities.PropertyViewWithDetails, error) {
	return s.viewRepo.ListDetailed(ctx)
}

// ListViewsByProperty lista las visitas a una propiedad
func (s *PropertyViewService) ListViewsByProperty(ctx context.Context, propertyID string) ([]entities.PropertyViewWithDetails, error) {
	return s.viewRepo.ListDetailedByProperty(ctx, propertyID)
}

// ListViewsByClient lista las visitas de un cliente
func (s *PropertyViewService) ListViewsByClient(ctx context.Context, clientID string) ([]entities.PropertyViewWithDetails, error) {
	return s.viewRepo.ListDetailedByClient(ctx, clientID)
}

// ListViewsByAgent lista las visitas registradas por un agente
func (s *PropertyViewService) ListViewsByAgent(ctx context.Context, agentID string) ([]entities.PropertyViewWithDetails, error) {
	return s.viewRepo.ListDetailedByAgent(ctx, agentID)
}

// GetView busca una visita por ID
func (s *PropertyViewService) GetView(ctx context.Context, id string) (*entities.PropertyViewWithDetails, error) {
	view, err := s.viewRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errors.NotFound(msgViewNotFound)
	}
	return view, nil
}

func (s *PropertyViewService) checkVisitors(ctx context.Context, userID, clientID, agentID *string) error {
	if userID != nil {
		exists, err := s.userRepo.Exists(ctx, *userID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgUserNotFound)
		}
	}
	if clientID != nil {
		exists, err := s.clientRepo.Exists(ctx, *clientID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgClientNotFound)
		}
	}
	if agentID != nil {
		exists, err := s.agentRepo.Exists(ctx, *agentID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(msgAgentNotFound)
		}
	}
	return nil
}

// CreateView registra una visita; view_date se fija en el servidor
func (s *PropertyViewService) CreateView(ctx context.Context, input CreatePropertyViewInput) (*entities.PropertyViewWithDetails, error) {
	propertyExists, err := s.propertyRepo.Exists(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !propertyExists {
		return nil, errors.NotFound(msgPropertyNotFound)
	}

	if err := s.checkVisitors(ctx, input.UserID, input.ClientID, input.AgentID); err != nil {
		return nil, err
	}

	view := &entities.PropertyView{
		PropertyID: input.PropertyID,
		UserID:     input.UserID,
		ClientID:   input.ClientID,
		AgentID:    input.AgentID,
		Source:     input.Source,
		IPAddress:  input.IPAddress,
		ViewDate:   time.Now().UTC(),
	}
	if err := s.viewRepo.Create(ctx, view); err != nil {
		return nil, err
	}

	return s.viewRepo.FindDetailedByID(ctx, view.ID)
}

// UpdateView actualiza los campos presentes de una visita
func (s *PropertyViewService) UpdateView(ctx context.Context, id string, input UpdatePropertyViewInput) (*entities.PropertyViewWithDetails, error) {
	exists, err := s.viewRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgViewNotFound)
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
	if err := s.checkVisitors(ctx, input.UserID, input.ClientID, input.AgentID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.PropertyID != nil {
		fields["property_id"] = *input.PropertyID
	}
	if input.UserID != nil {
		fields["user_id"] = *input.UserID
	}
	if input.ClientID != nil {
		fields["client_id"] = *input.ClientID
	}
	if input.AgentID != nil {
		fields["agent_id"] = *input.AgentID
	}
	if input.Source != nil {
		fields["source"] = *input.Source
	}
	if input.IPAddress != nil {
		fields["ip_address"] = *input.IPAddress
	}

	if len(fields) > 0 {
		if err := s.viewRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.viewRepo.FindDetailedByID(ctx, id)
}

// DeleteView elimina una visita
func (s *PropertyViewService) DeleteView(ctx context.Context, id string) error {
	rows, err := s.viewRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgViewNotFound)
	}
	return nil
}

// GetViewStats devuelve el agregado diario de visitas
func (s *PropertyViewService) GetViewStats(ctx context.Context) ([]entities.PropertyViewDailyStat, error) {
	return s.viewRepo.DailyStats(ctx)
}
