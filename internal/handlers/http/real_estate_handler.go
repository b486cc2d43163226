package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// RealEstateHandler atiende las peticiones HTTP de inmobiliarias
type RealEstateHandler struct {
	service *services.RealEstateService
}

// NewRealEstateHandler crea un nuevo RealEstateHandler
func NewRealEstateHandler(service *services.RealEstateService) *RealEstateHandler {
	return &RealEstateHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/real-estates
func (h *RealEstateHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/real-estates")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/stats", h.Stats)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *RealEstateHandler) List(c *gin.Context) {
	realEstates, err := h.service.ListRealEstates(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener inmobiliarias")
		return
	}
	c.JSON(http.StatusOK, realEstates)
}

func (h *RealEstateHandler) Get(c *gin.Context) {
	realEstate, err := h.service.GetRealEstate(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, realEstate)
}

func (h *RealEstateHandler) Create(c *gin.Context) {
	var req dto.CreateRealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	realEstate, err := h.service.CreateRealEstate(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear inmobiliaria")
		return
	}
	c.JSON(http.StatusCreated, realEstate)
}

func (h *RealEstateHandler) Update(c *gin.Context) {
	var req dto.UpdateRealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	realEstate, err := h.service.UpdateRealEstate(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, realEstate)
}

func (h *RealEstateHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteRealEstate(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Inmobiliaria eliminada correctamente"})
}

func (h *RealEstateHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetRealEstateStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas de la inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, stats)
}
