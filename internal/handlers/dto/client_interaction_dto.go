package dto

import "github.com/inmocrm/backend/internal/services"

// CreateClientInteractionRequest es el cuerpo de POST /api/client-interactions
type CreateClientInteractionRequest struct {
	ClientID   string  `json:"client_id" binding:"required,uuid"`
	AgentID    string  `json:"agent_id" binding:"required,uuid"`
	PropertyID *string `json:"property_id" binding:"omitempty,uuid"`
	Type       string  `json:"type" binding:"required,oneof=call email meeting visit other"`
	Status     string  `json:"status" binding:"required,oneof=pending completed cancelled"`
	Notes      *string `json:"notes" binding:"omitempty"`
}

func (r *CreateClientInteractionRequest) ToInput() services.CreateClientInteractionInput {
	return services.CreateClientInteractionInput{
		ClientID:   r.ClientID,
		AgentID:    r.AgentID,
		PropertyID: r.PropertyID,
		Type:       r.Type,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}

// UpdateClientInteractionRequest es el cuerpo de PUT /api/client-interactions/:id
type UpdateClientInteractionRequest struct {
	ClientID   *string `json:"client_id" binding:"omitempty,uuid"`
	AgentID    *string `json:"agent_id" binding:"omitempty,uuid"`
	PropertyID *string `json:"property_id" binding:"omitempty,uuid"`
	Type       *string `json:"type" binding:"omitempty,oneof=call email meeting visit other"`
	Status     *string `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Notes      *string `json:"notes" binding:"omitempty"`
}

func (r *UpdateClientInteractionRequest) ToInput() services.UpdateClientInteractionInput {
	return services.UpdateClientInteractionInput{
		ClientID:   r.ClientID,
		AgentID:    r.AgentID,
		PropertyID: r.PropertyID,
		Type:       r.Type,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}
