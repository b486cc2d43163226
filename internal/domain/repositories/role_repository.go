package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// RoleRepository define la persistencia de roles y su join de permisos
type RoleRepository interface {
	List(ctx context.Context) ([]entities.Role, error)
	FindByID(ctx context.Context, id string) (*entities.Role, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, role *entities.Role) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)

	// Permissions devuelve los permisos del rol unidos con el nombre del
	// módulo, sin duplicados.
	Permissions(ctx context.Context, roleID string) ([]entities.PermissionWithModule, error)
	// DeletePermissions y InsertPermission respetan la transacción activa
	// del contexto; la asignación completa se ejecuta dentro de un UnitOfWork.
	DeletePermissions(ctx context.Context, roleID string) error
	InsertPermission(ctx context.Context, roleID string, assignment entities.PermissionAssignment) error
}
