package dto

import (
	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/services"
)

// CreateRoleRequest es el cuerpo de POST /api/roles
type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (r *CreateRoleRequest) ToInput() services.CreateRoleInput {
	return services.CreateRoleInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// UpdateRoleRequest es el cuerpo de PUT /api/roles/:id
type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (r *UpdateRoleRequest) ToInput() services.UpdateRoleInput {
	return services.UpdateRoleInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// PermissionAssignmentRequest es una entrada de la lista de asignación
type PermissionAssignmentRequest struct {
	PermissionID string `json:"permissionId" binding:"required,uuid"`
	ModuleID     string `json:"moduleId" binding:"required,uuid"`
}

// AssignPermissionsRequest es el cuerpo de POST /api/roles/:id/permissions.
// La lista reemplaza el conjunto completo; vacía deja el rol sin permisos.
type AssignPermissionsRequest struct {
	Permissions []PermissionAssignmentRequest `json:"permissions" binding:"required,dive"`
}

func (r *AssignPermissionsRequest) ToAssignments() []entities.PermissionAssignment {
	assignments := make([]entities.PermissionAssignment, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		assignments = append(assignments, entities.PermissionAssignment{
			PermissionID: p.PermissionID,
			ModuleID:     p.ModuleID,
		})
	}
	return assignments
}
