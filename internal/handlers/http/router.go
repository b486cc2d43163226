package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers agrupa todos los handlers de la API
type Handlers struct {
	RealEstates  *RealEstateHandler
	Roles        *RoleHandler
	Users        *UserHandler
	Agents       *AgentHandler
	Clients      *ClientHandler
	Projects     *ProjectHandler
	Properties   *PropertyHandler
	Favorites    *PropertyFavoriteHandler
	Views        *PropertyViewHandler
	Interactions *ClientInteractionHandler
}

// RegisterRoutes monta todas las rutas bajo /api más el health check
func RegisterRoutes(engine *gin.Engine, handlers Handlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	handlers.RealEstates.RegisterRoutes(api)
	handlers.Roles.RegisterRoutes(api)
	handlers.Users.RegisterRoutes(api)
	handlers.Agents.RegisterRoutes(api)
	handlers.Clients.RegisterRoutes(api)
	handlers.Projects.RegisterRoutes(api)
	handlers.Properties.RegisterRoutes(api)
	handlers.Favorites.RegisterRoutes(api)
	handlers.Views.RegisterRoutes(api)
	handlers.Interactions.RegisterRoutes(api)
}
