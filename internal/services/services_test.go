package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/repositories"
	"github.com/inmocrm/backend/internal/infrastructure/auth"
	"github.com/inmocrm/backend/internal/infrastructure/logging"
	"github.com/inmocrm/backend/internal/infrastructure/persistence/postgres"
)

// testEnv levanta la pila completa de servicios sobre SQLite en memoria.
type testEnv struct {
	db *gorm.DB

	realEstateRepo  repositories.RealEstateRepository
	roleRepo        repositories.RoleRepository
	userRepo        repositories.UserRepository
	agentRepo       repositories.AgentRepository
	clientRepo      repositories.ClientRepository
	projectRepo     repositories.ProjectRepository
	propertyRepo    repositories.PropertyRepository
	favoriteRepo    repositories.PropertyFavoriteRepository
	viewRepo        repositories.PropertyViewRepository
	interactionRepo repositories.ClientInteractionRepository

	realEstates  *RealEstateService
	roles        *RoleService
	users        *UserService
	agents       *AgentService
	clients      *ClientService
	projects     *ProjectService
	properties   *PropertyService
	favorites    *PropertyFavoriteService
	views        *PropertyViewService
	interactions *ClientInteractionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(postgres.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	env := &testEnv{db: db}
	env.realEstateRepo = postgres.NewRealEstateRepository(db)
	env.roleRepo = postgres.NewRoleRepository(db)
	env.userRepo = postgres.NewUserRepository(db)
	env.agentRepo = postgres.NewAgentRepository(db)
	env.clientRepo = postgres.NewClientRepository(db)
	env.projectRepo = postgres.NewProjectRepository(db)
	env.propertyRepo = postgres.NewPropertyRepository(db)
	env.favoriteRepo = postgres.NewPropertyFavoriteRepository(db)
	env.viewRepo = postgres.NewPropertyViewRepository(db)
	env.interactionRepo = postgres.NewClientInteractionRepository(db)

	uow := postgres.NewUnitOfWork(db)
	log := logging.NewSlogLogger("error")
	tokens := auth.NewTokenService("clave-de-prueba", "1h")

	env.realEstates = NewRealEstateService(env.realEstateRepo, env.agentRepo, env.propertyRepo, env.projectRepo, log)
	env.roles = NewRoleService(env.roleRepo, env.userRepo, uow, log)
	env.users = NewUserService(env.userRepo, env.roleRepo, env.agentRepo, tokens, log)
	env.agents = NewAgentService(env.agentRepo, env.userRepo, env.realEstateRepo, env.clientRepo, env.viewRepo, env.interactionRepo, log)
	env.clients = NewClientService(env.clientRepo, env.agentRepo, env.realEstateRepo, env.interactionRepo, log)
	env.projects = NewProjectService(env.projectRepo, env.realEstateRepo, env.propertyRepo, log)
	env.properties = NewPropertyService(env.propertyRepo, env.realEstateRepo, env.projectRepo, env.agentRepo, env.viewRepo, env.favoriteRepo, log)
	env.favorites = NewPropertyFavoriteService(env.favoriteRepo, env.propertyRepo, env.userRepo, log)
	env.views = NewPropertyViewService(env.viewRepo, env.propertyRepo, env.userRepo, env.clientRepo, env.agentRepo, log)
	env.interactions = NewClientInteractionService(env.interactionRepo, env.clientRepo, env.agentRepo, env.propertyRepo, log)

	return env
}

// Fixtures básicas compartidas por varios tests

func (e *testEnv) createRealEstate(t *testing.T, name string) *entities.RealEstateWithDetails {
	t.Helper()
	re, err := e.realEstates.CreateRealEstate(context.Background(), CreateRealEstateInput{
		Name:    name,
		Address: "Calle Mayor 1",
		Phone:   "555-0100",
		Email:   "info@" + name + ".com",
	})
	require.NoError(t, err)
	return re
}

func (e *testEnv) createUser(t *testing.T, username, email string) *entities.UserWithDetails {
	t.Helper()
	user, err := e.users.CreateUser(context.Background(), CreateUserInput{
		Username: username,
		Email:    email,
		Password: "secreto123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createAgent(t *testing.T, userID string, realEstateID *string) *entities.AgentWithDetails {
	t.Helper()
	agent, err := e.agents.CreateAgent(context.Background(), CreateAgentInput{
		UserID:       userID,
		RealEstateID: realEstateID,
	})
	require.NoError(t, err)
	return agent
}

func (e *testEnv) createClient(t *testing.T, realEstateID, agentID, docNumber string) *entities.ClientWithDetails {
	t.Helper()
	client, err := e.clients.CreateClient(context.Background(), CreateClientInput{
		Name:           "Cliente " + docNumber,
		Email:          "cliente" + docNumber + "@mail.com",
		Phone:          "555-0900",
		DocumentType:   "dni",
		DocumentNumber: docNumber,
		RealEstateID:   realEstateID,
		AgentID:        agentID,
	})
	require.NoError(t, err)
	return client
}

func (e *testEnv) createProperty(t *testing.T, realEstateID, title string) *entities.PropertyWithDetails {
	t.Helper()
	property, err := e.properties.CreateProperty(context.Background(), CreatePropertyInput{
		Title:        title,
		Description:  "descripción",
		Price:        150000,
		Address:      "Calle 5",
		Type:         "apartment",
		RealEstateID: realEstateID,
	})
	require.NoError(t, err)
	return property
}
