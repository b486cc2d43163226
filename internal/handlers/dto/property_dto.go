package dto

import "github.com/inmocrm/backend/internal/services"

// CreatePropertyRequest es el cuerpo de POST /api/properties
type CreatePropertyRequest struct {
	Title        string  `json:"title" binding:"required,min=2,max=255"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Address      string  `json:"address" binding:"required,max=500"`
	Type         string  `json:"type" binding:"required,max=50"`
	Status       *string `json:"status" binding:"omitempty,oneof=available sold reserved"`
	RealEstateID string  `json:"real_estate_id" binding:"required,uuid"`
	ProjectID    *string `json:"project_id" binding:"omitempty,uuid"`
	AgentID      *string `json:"agent_id" binding:"omitempty,uuid"`
}

func (r *CreatePropertyRequest) ToInput() services.CreatePropertyInput {
	return services.CreatePropertyInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Address:      r.Address,
		Type:         r.Type,
		Status:       r.Status,
		RealEstateID: r.RealEstateID,
		ProjectID:    r.ProjectID,
		AgentID:      r.AgentID,
	}
}

// UpdatePropertyRequest es el cuerpo de PUT /api/properties/:id
type UpdatePropertyRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=2,max=255"`
	Description  *string  `json:"description" binding:"omitempty"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Address      *string  `json:"address" binding:"omitempty,max=500"`
	Type         *string  `json:"type" binding:"omitempty,max=50"`
	Status       *string  `json:"status" binding:"omitempty,oneof=available sold reserved"`
	RealEstateID *string  `json:"real_estate_id" binding:"omitempty,uuid"`
	ProjectID    *string  `json:"project_id" binding:"omitempty,uuid"`
	AgentID      *string  `json:"agent_id" binding:"omitempty,uuid"`
}

func (r *UpdatePropertyRequest) ToInput() services.UpdatePropertyInput {
	return services.UpdatePropertyInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Address:      r.Address,
		Type:         r.Type,
		Status:       r.Status,
		RealEstateID: r.RealEstateID,
		ProjectID:    r.ProjectID,
		AgentID:      r.AgentID,
	}
}
