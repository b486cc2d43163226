package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// PropertyHandler atiende las peticiones HTTP de propiedades
type PropertyHandler struct {
	service *services.PropertyService
}

// NewPropertyHandler crea un nuevo PropertyHandler
func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/properties
func (h *PropertyHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/properties")
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/real-estate/:realEstateId", h.ListByRealEstate)
	group.GET("/project/:projectId", h.ListByProject)
	group.GET("/agent/:agentId", h.ListByAgent)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.service.ListProperties(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener propiedades")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) ListByRealEstate(c *gin.Context) {
	properties, err := h.service.ListPropertiesByRealEstate(c.Request.Context(), c.Param("realEstateId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener propiedades de la inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) ListByProject(c *gin.Context) {
	properties, err := h.service.ListPropertiesByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener propiedades del proyecto")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) ListByAgent(c *gin.Context) {
	properties, err := h.service.ListPropertiesByAgent(c.Request.Context(), c.Param("agentId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener propiedades del agente")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener propiedad")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear propiedad")
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar propiedad")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar propiedad")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Propiedad eliminada correctamente"})
}

func (h *PropertyHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetPropertyStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas de propiedades")
		return
	}
	c.JSON(http.StatusOK, stats)
}
