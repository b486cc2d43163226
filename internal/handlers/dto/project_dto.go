package dto

import "github.com/inmocrm/backend/internal/services"

// CreateProjectRequest es el cuerpo de POST /api/projects
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Description  string `json:"description" binding:"required"`
	RealEstateID string `json:"real_estate_id" binding:"required,uuid"`
	Status       string `json:"status" binding:"required,oneof=active completed cancelled"`
}

func (r *CreateProjectRequest) ToInput() services.CreateProjectInput {
	return services.CreateProjectInput{
		Name:         r.Name,
		Description:  r.Description,
		RealEstateID: r.RealEstateID,
		Status:       r.Status,
	}
}

// UpdateProjectRequest es el cuerpo de PUT /api/projects/:id
type UpdateProjectRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string `json:"description" binding:"omitempty"`
	RealEstateID *string `json:"real_estate_id" binding:"omitempty,uuid"`
	Status       *string `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}

func (r *UpdateProjectRequest) ToInput() services.UpdateProjectInput {
	return services.UpdateProjectInput{
		Name:         r.Name,
		Description:  r.Description,
		RealEstateID: r.RealEstateID,
		Status:       r.Status,
	}
}
