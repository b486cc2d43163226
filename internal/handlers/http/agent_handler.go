package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// AgentHandler atiende las peticiones HTTP de agentes
type AgentHandler struct {
	service *services.AgentService
}

// NewAgentHandler crea un nuevo AgentHandler
func NewAgentHandler(service *services.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/agents
func (h *AgentHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/agents")
	group.GET("", h.List)
	group.GET("/real-estate/:realEstateId", h.ListByRealEstate)
	group.GET("/:id", h.Get)
	group.GET("/:id/stats", h.Stats)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.service.ListAgents(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener agentes")
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *AgentHandler) ListByRealEstate(c *gin.Context) {
	agents, err := h.service.ListAgentsByRealEstate(c.Request.Context(), c.Param("realEstateId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener agentes de la inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *AgentHandler) Get(c *gin.Context) {
	agent, err := h.service.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener agente")
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (h *AgentHandler) Create(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	agent, err := h.service.CreateAgent(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear agente")
		return
	}
	c.JSON(http.StatusCreated, agent)
}

func (h *AgentHandler) Update(c *gin.Context) {
	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	agent, err := h.service.UpdateAgent(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar agente")
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar agente")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Agente eliminado correctamente"})
}

func (h *AgentHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetAgentStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas del agente")
		return
	}
	c.JSON(http.StatusOK, stats)
}
