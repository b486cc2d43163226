package entities

import "time"

// Permission representa un permiso individual
type Permission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Module agrupa permisos por área funcional
type Module struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermissionWithModule es la fila del join rol→permiso→módulo
type PermissionWithModule struct {
	Permission
	ModuleName string `json:"module_name"`
}
