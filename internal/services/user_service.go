package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
	"github.com/inmocrm/backend/internal/infrastructure/auth"
)

const msgUserNotFound = "Usuario no encontrado"
const msgEmailDuplicated = "El email ya está registrado"
const msgRoleMissing = "El rol especificado no existe"

// UserService contiene la lógica de negocio de usuarios y autenticación
type UserService struct {
	userRepo  repositories.UserRepository
	roleRepo  repositories.RoleRepository
	agentRepo repositories.AgentRepository
	tokens    ports.TokenIssuer
	logger    ports.Logger
}

// NewUserService crea un nuevo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	agentRepo repositories.AgentRepository,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		agentRepo: agentRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// CreateUserInput representa los datos para crear un usuario
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Phone    *string
	RoleID   *string
	Status   *string
}

// UpdateUserInput representa una actualización parcial de un usuario
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Phone    *string
	RoleID   *string
	Status   *string
}

// ListUsers lista los usuarios con el nombre de su rol
func (s *UserService) ListUsers(ctx context.Context) ([]entities.UserWithDetails, error) {
	return s.userRepo.ListDetailed(ctx)
}

// GetUser busca un usuario por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.UserWithDetails, error) {
	user, err := s.userRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound(msgUserNotFound)
	}
	return user, nil
}

// CreateUser crea un nuevo usuario con la contraseña hasheada
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.UserWithDetails, error) {
	s.logger.Info("creating user", "email", input.Email)

	if input.RoleID != nil {
		roleExists, err := s.roleRepo.Exists(ctx, *input.RoleID)
		if err != nil {
			return nil, err
		}
		if !roleExists {
			return nil, errors.NotFound(msgRoleMissing)
		}
	}

	taken, err := s.userRepo.ExistsByEmail(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.Validation(msgEmailDuplicated)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	status := entities.UserStatusActive
	if input.Status != nil {
		status = *input.Status
	}

	user := &entities.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Phone:    input.Phone,
		RoleID:   input.RoleID,
		Status:   status,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgEmailDuplicated)
		}
		return nil, err
	}

	return s.userRepo.FindDetailedByID(ctx, user.ID)
}

// UpdateUser actualiza los campos presentes de un usuario
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.UserWithDetails, error) {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgUserNotFound)
	}

	if input.RoleID != nil {
		roleExists, err := s.roleRepo.Exists(ctx, *input.RoleID)
		if err != nil {
			return nil, err
		}
		if !roleExists {
			return nil, errors.NotFound(msgRoleMissing)
		}
	}

	if input.Email != nil {
		taken, err := s.userRepo.ExistsByEmail(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.Validation(msgEmailDuplicated)
		}
	}

	fields := map[string]any{}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.RoleID != nil {
		fields["role_id"] = *input.RoleID
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgEmailDuplicated)
			}
			return nil, err
		}
	}

	return s.userRepo.FindDetailedByID(ctx, id)
}

// DeleteUser elimina un usuario que no tenga agente asociado
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgUserNotFound)
	}

	agents, err := s.agentRepo.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if agents > 0 {
		return errors.Conflict("No se puede eliminar el usuario porque está asignado a un agente")
	}

	rows, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgUserNotFound)
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}

// Login autentica por email y contraseña. Ambos modos de fallo devuelven
// el mismo error para no revelar si el email existe.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, errors.ErrInvalidCredentials
	}

	permissions := []entities.PermissionWithModule{}
	if user.RoleID != nil {
		permissions, err = s.roleRepo.Permissions(ctx, *user.RoleID)
		if err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "id", user.ID)

	return &entities.Session{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role: entities.SessionRole{
			ID:   user.RoleID,
			Name: user.RoleName,
		},
		Permissions: permissions,
		Token:       token,
	}, nil
}
