package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgRoleNotFound = "Rol no encontrado"
const msgRoleDuplicated = "Ya existe un rol con ese nombre"

// RoleService contiene la lógica de negocio de roles y permisos
type RoleService struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewRoleService crea un nuevo RoleService
func NewRoleService(
	roleRepo repositories.RoleRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// CreateRoleInput representa los datos para crear un rol
type CreateRoleInput struct {
	Name        string
	Description *string
}

// UpdateRoleInput representa una actualización parcial de un rol
type UpdateRoleInput struct {
	Name        *string
	Description *string
}

// ListRoles lista todos los roles
func (s *RoleService) ListRoles(ctx context.Context) ([]entities.Role, error) {
	return s.roleRepo.List(ctx)
}

// GetRole busca un rol por ID
func (s *RoleService) GetRole(ctx context.Context, id string) (*entities.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NotFound(msgRoleNotFound)
	}
	return role, nil
}

// CreateRole crea un nuevo rol
func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (*entities.Role, error) {
	s.logger.Info("creating role", "name", input.Name)

	exists, err := s.roleRepo.ExistsByName(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Validation(msgRoleDuplicated)
	}

	role := &entities.Role{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgRoleDuplicated)
		}
		return nil, err
	}

	return s.roleRepo.FindByID(ctx, role.ID)
}

// UpdateRole actualiza los campos presentes de un rol
func (s *RoleService) UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*entities.Role, error) {
	exists, err := s.roleRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgRoleNotFound)
	}

	if input.Name != nil {
		dup, err := s.roleRepo.ExistsByName(ctx, *input.Name, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, errors.Validation(msgRoleDuplicated)
		}
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if len(fields) > 0 {
		if err := s.roleRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgRoleDuplicated)
			}
			return nil, err
		}
	}

	return s.roleRepo.FindByID(ctx, id)
}

// DeleteRole elimina un rol que no esté asignado a usuarios
func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	exists, err := s.roleRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgRoleNotFound)
	}

	users, err := s.userRepo.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return errors.Conflict("No se puede eliminar el rol porque está asignado a usuarios")
	}

	rows, err := s.roleRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgRoleNotFound)
	}

	s.logger.Info("role deleted", "id", id)
	return nil
}

// GetRolePermissions devuelve los permisos del rol con su módulo
func (s *RoleService) GetRolePermissions(ctx context.Context, roleID string) ([]entities.PermissionWithModule, error) {
	exists, err := s.roleRepo.Exists(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(msgRoleNotFound)
	}

	return s.roleRepo.Permissions(ctx, roleID)
}

// AssignPermissions reemplaza el conjunto completo de permisos del rol.
// El borrado y las inserciones corren en una sola transacción: o queda
// el conjunto nuevo entero, o queda el anterior.
func (s *RoleService) AssignPermissions(ctx context.Context, roleID string, assignments []entities.PermissionAssignment) error {
	exists, err := s.roleRepo.Exists(ctx, roleID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(msgRoleNotFound)
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.DeletePermissions(txCtx, roleID); err != nil {
			return err
		}
		for _, assignment := range assignments {
			if err := s.roleRepo.InsertPermission(txCtx, roleID, assignment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("role permissions replaced", "role_id", roleID, "total", len(assignments))
	return nil
}
