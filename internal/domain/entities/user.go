package entities

import "time"

// Estados posibles de un usuario
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema. Password guarda el hash
// bcrypt, nunca el texto plano, y no se serializa en respuestas.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Phone     *string   `json:"phone"`
	RoleID    *string   `json:"role_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithDetails agrega el nombre del rol asignado
type UserWithDetails struct {
	User
	RoleName *string `json:"role_name"`
}

// SessionRole es el rol resumido dentro de la sesión de login
type SessionRole struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Session es el resultado de un login exitoso: perfil, rol y la lista
// aplanada (sin duplicados) de permisos del rol, más el token firmado.
type Session struct {
	ID          string                 `json:"id"`
	Username    string                 `json:"username"`
	Email       string                 `json:"email"`
	Role        SessionRole            `json:"role"`
	Permissions []PermissionWithModule `json:"permissions"`
	Token       string                 `json:"token"`
}
