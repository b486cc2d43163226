package repositories

import (
	"context"

	"github.com/inmocrm/backend/internal/domain/entities"
)

// UserRepository define la persistencia de usuarios
type UserRepository interface {
	ListDetailed(ctx context.Context) ([]entities.UserWithDetails, error)
	FindDetailedByID(ctx context.Context, id string) (*entities.UserWithDetails, error)
	// FindByEmail incluye el hash de contraseña; lo usa el login.
	FindByEmail(ctx context.Context, email string) (*entities.UserWithDetails, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByRole(ctx context.Context, roleID string) (int64, error)
}
