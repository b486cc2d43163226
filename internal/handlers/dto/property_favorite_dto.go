package dto

import "github.com/inmocrm/backend/internal/services"

// CreatePropertyFavoriteRequest es el cuerpo de POST /api/property-favorites
type CreatePropertyFavoriteRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid"`
	UserID     string `json:"user_id" binding:"required,uuid"`
}

func (r *CreatePropertyFavoriteRequest) ToInput() services.CreatePropertyFavoriteInput {
	return services.CreatePropertyFavoriteInput{
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
	}
}

// UpdatePropertyFavoriteRequest es el cuerpo de PUT /api/property-favorites/:id
type UpdatePropertyFavoriteRequest struct {
	PropertyID *string `json:"property_id" binding:"omitempty,uuid"`
	UserID     *string `json:"user_id" binding:"omitempty,uuid"`
}

func (r *UpdatePropertyFavoriteRequest) ToInput() services.UpdatePropertyFavoriteInput {
	return services.UpdatePropertyFavoriteInput{
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
	}
}
