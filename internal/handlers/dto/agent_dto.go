package dto

import "github.com/inmocrm/backend/internal/services"

// CreateAgentRequest es el cuerpo de POST /api/agents
type CreateAgentRequest struct {
	UserID       string  `json:"user_id" binding:"required,uuid"`
	RealEstateID *string `json:"real_estate_id" binding:"omitempty,uuid"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
}

func (r *CreateAgentRequest) ToInput() services.CreateAgentInput {
	return services.CreateAgentInput{
		UserID:       r.UserID,
		RealEstateID: r.RealEstateID,
		Phone:        r.Phone,
	}
}

// UpdateAgentRequest es el cuerpo de PUT /api/agents/:id
type UpdateAgentRequest struct {
	UserID       *string `json:"user_id" binding:"omitempty,uuid"`
	RealEstateID *string `json:"real_estate_id" binding:"omitempty,uuid"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
}

func (r *UpdateAgentRequest) ToInput() services.UpdateAgentInput {
	return services.UpdateAgentInput{
		UserID:       r.UserID,
		RealEstateID: r.RealEstateID,
		Phone:        r.Phone,
	}
}
