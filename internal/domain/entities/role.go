package entities

import "time"

// Role representa un rol del sistema
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermissionAssignment es una entrada de la lista de asignación:
// un permiso concedido dentro de un módulo.
type PermissionAssignment struct {
	PermissionID string
	ModuleID     string
}
