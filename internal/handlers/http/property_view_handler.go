package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// PropertyViewHandler atiende las peticiones HTTP de visitas
type PropertyViewHandler struct {
	service *services.PropertyViewService
}

// NewPropertyViewHandler crea un nuevo PropertyViewHandler
func NewPropertyViewHandler(service *services.PropertyViewService) *PropertyViewHandler {
	return &PropertyViewHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/property-views
func (h *PropertyViewHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/property-views")
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/property/:propertyId", h.ListByProperty)
	group.GET("/client/:clientId", h.ListByClient)
	group.GET("/agent/:agentId", h.ListByAgent)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *PropertyViewHandler) List(c *gin.Context) {
	views, err := h.service.ListViews(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener las vistas de propiedades")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *PropertyViewHandler) ListByProperty(c *gin.Context) {
	views, err := h.service.ListViewsByProperty(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener las vistas de la propiedad")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *PropertyViewHandler) ListByClient(c *gin.Context) {
	views, err := h.service.ListViewsByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener las vistas del cliente")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *PropertyViewHandler) ListByAgent(c *gin.Context) {
	views, err := h.service.ListViewsByAgent(c.Request.Context(), c.Param("agentId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener las vistas del agente")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *PropertyViewHandler) Get(c *gin.Context) {
	view, err := h.service.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener la vista de la propiedad")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PropertyViewHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	view, err := h.service.CreateView(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear la vista de la propiedad")
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *PropertyViewHandler) Update(c *gin.Context) {
	var req dto.UpdatePropertyViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	view, err := h.service.UpdateView(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar la vista de la propiedad")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PropertyViewHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteView(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar la vista de la propiedad")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vista eliminada correctamente"})
}

func (h *PropertyViewHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetViewStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas de vistas")
		return
	}
	c.JSON(http.StatusOK, stats)
}
