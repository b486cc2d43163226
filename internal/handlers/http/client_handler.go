package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// ClientHandler atiende las peticiones HTTP de clientes
type ClientHandler struct {
	service *services.ClientService
}

// NewClientHandler crea un nuevo ClientHandler
func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/clients
func (h *ClientHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/clients")
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/agent/:agentId", h.ListByAgent)
	group.GET("/user/:userId", h.ListByUser)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener clientes")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) ListByAgent(c *gin.Context) {
	clients, err := h.service.ListClientsByAgent(c.Request.Context(), c.Param("agentId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener clientes del agente")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) ListByUser(c *gin.Context) {
	clients, err := h.service.ListClientsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener clientes del usuario")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener cliente")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear cliente")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar cliente")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar cliente")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cliente eliminado correctamente"})
}

func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetClientStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas de clientes")
		return
	}
	c.JSON(http.StatusOK, stats)
}
