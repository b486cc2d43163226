package dto

import "github.com/inmocrm/backend/internal/services"

// CreateClientRequest es el cuerpo de POST /api/clients
type CreateClientRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required,max=50"`
	DocumentType   string  `json:"document_type" binding:"required,max=20"`
	DocumentNumber string  `json:"document_number" binding:"required,max=50"`
	Address        *string `json:"address" binding:"omitempty,max=500"`
	RealEstateID   string  `json:"real_estate_id" binding:"required,uuid"`
	AgentID        string  `json:"agent_id" binding:"required,uuid"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *CreateClientRequest) ToInput() services.CreateClientInput {
	return services.CreateClientInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Address:        r.Address,
		RealEstateID:   r.RealEstateID,
		AgentID:        r.AgentID,
		Status:         r.Status,
	}
}

// UpdateClientRequest es el cuerpo de PUT /api/clients/:id
type UpdateClientRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	DocumentType   *string `json:"document_type" binding:"omitempty,max=20"`
	DocumentNumber *string `json:"document_number" binding:"omitempty,max=50"`
	Address        *string `json:"address" binding:"omitempty,max=500"`
	RealEstateID   *string `json:"real_estate_id" binding:"omitempty,uuid"`
	AgentID        *string `json:"agent_id" binding:"omitempty,uuid"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateClientRequest) ToInput() services.UpdateClientInput {
	return services.UpdateClientInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Address:        r.Address,
		RealEstateID:   r.RealEstateID,
		AgentID:        r.AgentID,
		Status:         r.Status,
	}
}
