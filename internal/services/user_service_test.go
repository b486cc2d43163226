package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/domain/errors"
)

func TestUserService_CreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("guarda el hash, nunca el texto plano", func(t *testing.T) {
		user := env.createUser(t, "ana", "ana@mail.com")
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "active", user.Status)

		stored, err := env.userRepo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secreto123", stored.Password)
	})

	t.Run("email duplicado es error de validación", func(t *testing.T) {
		_, err := env.users.CreateUser(ctx, CreateUserInput{
			Username: "otra", Email: "ana@mail.com", Password: "x",
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
		assert.Equal(t, "El email ya está registrado", derr.Message)
	})

	t.Run("rol inexistente es not found", func(t *testing.T) {
		missing := "00000000-0000-0000-0000-000000000000"
		_, err := env.users.CreateUser(ctx, CreateUserInput{
			Username: "luis", Email: "luis@mail.com", Password: "x", RoleID: &missing,
		})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "El rol especificado no existe", derr.Message)
	})

	t.Run("incluye el nombre del rol asignado", func(t *testing.T) {
		role, err := env.roles.CreateRole(ctx, CreateRoleInput{Name: "vendedor"})
		require.NoError(t, err)

		user, err := env.users.CreateUser(ctx, CreateUserInput{
			Username: "mario", Email: "mario@mail.com", Password: "x", RoleID: &role.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, user.RoleName)
		assert.Equal(t, "vendedor", *user.RoleName)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, "ana", "ana@mail.com")

	t.Run("los campos ausentes conservan su valor", func(t *testing.T) {
		phone := "555-0101"
		updated, err := env.users.UpdateUser(ctx, user.ID, UpdateUserInput{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "ana", updated.Username)
		assert.Equal(t, "ana@mail.com", updated.Email)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)
	})

	t.Run("cambiar la contraseña rehashea", func(t *testing.T) {
		before, err := env.userRepo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)

		password := "nuevosecreto"
		_, err = env.users.UpdateUser(ctx, user.ID, UpdateUserInput{Password: &password})
		require.NoError(t, err)

		after, err := env.userRepo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)
		assert.NotEqual(t, before.Password, after.Password)
		assert.NotEqual(t, password, after.Password)
	})

	t.Run("no puede tomar el email de otro usuario", func(t *testing.T) {
		env.createUser(t, "otro", "otro@mail.com")

		email := "otro@mail.com"
		_, err := env.users.UpdateUser(ctx, user.ID, UpdateUserInput{Email: &email})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindValidation, derr.Kind)
	})

	t.Run("usuario inexistente es not found", func(t *testing.T) {
		name := "x"
		_, err := env.users.UpdateUser(ctx, "00000000-0000-0000-0000-000000000000", UpdateUserInput{Username: &name})
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
		assert.Equal(t, "Usuario no encontrado", derr.Message)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("bloqueado cuando es agente", func(t *testing.T) {
		user := env.createUser(t, "ana", "ana@mail.com")
		env.createAgent(t, user.ID, nil)

		err := env.users.DeleteUser(ctx, user.ID)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindConflict, derr.Kind)
		assert.Equal(t, "No se puede eliminar el usuario porque está asignado a un agente", derr.Message)
	})

	t.Run("elimina un usuario sin agente", func(t *testing.T) {
		user := env.createUser(t, "libre", "libre@mail.com")
		require.NoError(t, env.users.DeleteUser(ctx, user.ID))

		found, err := env.users.GetUser(ctx, user.ID)
		assert.Nil(t, found)
		derr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.KindNotFound, derr.Kind)
	})
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role, err := env.roles.CreateRole(ctx, CreateRoleInput{Name: "admin"})
	require.NoError(t, err)
	_, err = env.users.CreateUser(ctx, CreateUserInput{
		Username: "ana", Email: "ana@mail.com", Password: "secreto123", RoleID: &role.ID,
	})
	require.NoError(t, err)

	t.Run("devuelve sesión con token y rol", func(t *testing.T) {
		session, err := env.users.Login(ctx, "ana@mail.com", "secreto123")
		require.NoError(t, err)
		assert.Equal(t, "ana", session.Username)
		assert.NotEmpty(t, session.Token)
		require.NotNil(t, session.Role.Name)
		assert.Equal(t, "admin", *session.Role.Name)
		assert.NotNil(t, session.Permissions)
	})

	t.Run("contraseña incorrecta y email inexistente son indistinguibles", func(t *testing.T) {
		_, errPassword := env.users.Login(ctx, "ana@mail.com", "mala")
		_, errEmail := env.users.Login(ctx, "nadie@mail.com", "secreto123")

		require.Error(t, errPassword)
		require.Error(t, errEmail)
		assert.Equal(t, errPassword.Error(), errEmail.Error())

		derr, ok := errors.As(errPassword)
		require.True(t, ok)
		assert.Equal(t, errors.KindUnauthorized, derr.Kind)
	})
}
