package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/inmocrm/backend/internal/handlers/http"
	"github.com/inmocrm/backend/internal/handlers/middleware"
	"github.com/inmocrm/backend/internal/infrastructure/auth"
	"github.com/inmocrm/backend/internal/infrastructure/config"
	"github.com/inmocrm/backend/internal/infrastructure/logging"
	"github.com/inmocrm/backend/internal/infrastructure/persistence/postgres"
	"github.com/inmocrm/backend/internal/services"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting inmocrm backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar a la base de datos
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	realEstateRepo := postgres.NewRealEstateRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	agentRepo := postgres.NewAgentRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	favoriteRepo := postgres.NewPropertyFavoriteRepository(db)
	viewRepo := postgres.NewPropertyViewRepository(db)
	interactionRepo := postgres.NewClientInteractionRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar servicios de autenticación
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Inicializar services
	realEstateService := services.NewRealEstateService(realEstateRepo, agentRepo, propertyRepo, projectRepo, logger)
	roleService := services.NewRoleService(roleRepo, userRepo, uow, logger)
	userService := services.NewUserService(userRepo, roleRepo, agentRepo, tokens, logger)
	agentService := services.NewAgentService(agentRepo, userRepo, realEstateRepo, clientRepo, viewRepo, interactionRepo, logger)
	clientService := services.NewClientService(clientRepo, agentRepo, realEstateRepo, interactionRepo, logger)
	projectService := services.NewProjectService(projectRepo, realEstateRepo, propertyRepo, logger)
	propertyService := services.NewPropertyService(propertyRepo, realEstateRepo, projectRepo, agentRepo, viewRepo, favoriteRepo, logger)
	favoriteService := services.NewPropertyFavoriteService(favoriteRepo, propertyRepo, userRepo, logger)
	viewService := services.NewPropertyViewService(viewRepo, propertyRepo, userRepo, clientRepo, agentRepo, logger)
	interactionService := services.NewClientInteractionService(interactionRepo, clientRepo, agentRepo, propertyRepo, logger)

	// Inicializar handlers
	authMiddleware := middleware.JWTAuth(tokens)
	handlers := httphandlers.Handlers{
		RealEstates:  httphandlers.NewRealEstateHandler(realEstateService),
		Roles:        httphandlers.NewRoleHandler(roleService),
		Users:        httphandlers.NewUserHandler(userService, authMiddleware),
		Agents:       httphandlers.NewAgentHandler(agentService),
		Clients:      httphandlers.NewClientHandler(clientService),
		Projects:     httphandlers.NewProjectHandler(projectService),
		Properties:   httphandlers.NewPropertyHandler(propertyService),
		Favorites:    httphandlers.NewPropertyFavoriteHandler(favoriteService),
		Views:        httphandlers.NewPropertyViewHandler(viewService),
		Interactions: httphandlers.NewClientInteractionHandler(interactionService),
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Rutas de la API
	httphandlers.RegisterRoutes(router, handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
