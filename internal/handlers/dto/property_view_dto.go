package dto

import "github.com/inmocrm/backend/internal/services"

// CreatePropertyViewRequest es el cuerpo de POST /api/property-views.
// view_date no se acepta del cliente: lo fija el servidor.
type CreatePropertyViewRequest struct {
	PropertyID string  `json:"property_id" binding:"required,uuid"`
	UserID     *string `json:"user_id" binding:"omitempty,uuid"`
	ClientID   *string `json:"client_id" binding:"omitempty,uuid"`
	AgentID    *string `json:"agent_id" binding:"omitempty,uuid"`
	Source     string  `json:"source" binding:"required,max=100"`
	IPAddress  string  `json:"ip_address" binding:"required,max=64"`
}

func (r *CreatePropertyViewRequest) ToInput() services.CreatePropertyViewInput {
	return services.CreatePropertyViewInput{
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		ClientID:   r.ClientID,
		AgentID:    r.AgentID,
		Source:     r.Source,
		IPAddress:  r.IPAddress,
	}
}

// UpdatePropertyViewRequest es el cuerpo de PUT /api/property-views/:id
type UpdatePropertyViewRequest struct {
	PropertyID *string `json:"property_id" binding:"omitempty,uuid"`
	UserID     *string `json:"user_id" binding:"omitempty,uuid"`
	ClientID   *string `json:"client_id" binding:"omitempty,uuid"`
	AgentID    *string `json:"agent_id" binding:"omitempty,uuid"`
	Source     *string `json:"source" binding:"omitempty,max=100"`
	IPAddress  *string `json:"ip_address" binding:"omitempty,max=64"`
}

func (r *UpdatePropertyViewRequest) ToInput() services.UpdatePropertyViewInput {
	return services.UpdatePropertyViewInput{
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		ClientID:   r.ClientID,
		AgentID:    r.AgentID,
		Source:     r.Source,
		IPAddress:  r.IPAddress,
	}
}
