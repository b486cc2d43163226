package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// ClientInteractionHandler atiende las peticiones HTTP de interacciones
type ClientInteractionHandler struct {
	service *services.ClientInteractionService
}

// NewClientInteractionHandler crea un nuevo ClientInteractionHandler
func NewClientInteractionHandler(service *services.ClientInteractionService) *ClientInteractionHandler {
	return &ClientInteractionHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/client-interactions
func (h *ClientInteractionHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/client-interactions")
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/client/:clientId", h.ListByClient)
	group.GET("/agent/:agentId", h.ListByAgent)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *ClientInteractionHandler) List(c *gin.Context) {
	interactions, err := h.service.ListInteractions(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener interacciones")
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (h *ClientInteractionHandler) ListByClient(c *gin.Context) {
	interactions, err := h.service.ListInteractionsByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener interacciones del cliente")
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (h *ClientInteractionHandler) ListByAgent(c *gin.Context) {
	interactions, err := h.service.ListInteractionsByAgent(c.Request.Context(), c.Param("agentId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener interacciones del agente")
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (h *ClientInteractionHandler) Get(c *gin.Context) {
	interaction, err := h.service.GetInteraction(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener interacción")
		return
	}
	c.JSON(http.StatusOK, interaction)
}

func (h *ClientInteractionHandler) Create(c *gin.Context) {
	var req dto.CreateClientInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	interaction, err := h.service.CreateInteraction(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear interacción")
		return
	}
	c.JSON(http.StatusCreated, interaction)
}

func (h *ClientInteractionHandler) Update(c *gin.Context) {
	var req dto.UpdateClientInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	interaction, err := h.service.UpdateInteraction(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar interacción")
		return
	}
	c.JSON(http.StatusOK, interaction)
}

func (h *ClientInteractionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteInteraction(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar interacción")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Interacción eliminada correctamente"})
}

func (h *ClientInteractionHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetInteractionStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas")
		return
	}
	c.JSON(http.StatusOK, stats)
}
