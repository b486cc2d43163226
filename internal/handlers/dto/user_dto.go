package dto

import "github.com/inmocrm/backend/internal/services"

// CreateUserRequest es el cuerpo de POST /api/users
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	RoleID   *string `json:"role_id" binding:"omitempty,uuid"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		RoleID:   r.RoleID,
		Status:   r.Status,
	}
}

// UpdateUserRequest es el cuerpo de PUT /api/users/:id
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	RoleID   *string `json:"role_id" binding:"omitempty,uuid"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		RoleID:   r.RoleID,
		Status:   r.Status,
	}
}

// LoginRequest es el cuerpo de POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
