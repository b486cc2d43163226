package dto

import "github.com/inmocrm/backend/internal/services"

// CreateRealEstateRequest es el cuerpo de POST /api/real-estates
type CreateRealEstateRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Address string  `json:"address" binding:"required,max=500"`
	Phone   string  `json:"phone" binding:"required,max=50"`
	Email   string  `json:"email" binding:"required,email"`
	Website *string `json:"website" binding:"omitempty,url"`
}

func (r *CreateRealEstateRequest) ToInput() services.CreateRealEstateInput {
	return services.CreateRealEstateInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Website: r.Website,
	}
}

// UpdateRealEstateRequest es el cuerpo de PUT /api/real-estates/:id;
// los campos ausentes conservan su valor.
type UpdateRealEstateRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Website *string `json:"website" binding:"omitempty,url"`
}

func (r *UpdateRealEstateRequest) ToInput() services.UpdateRealEstateInput {
	return services.UpdateRealEstateInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Website: r.Website,
	}
}
