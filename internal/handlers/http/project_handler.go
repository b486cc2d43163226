package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// ProjectHandler atiende las peticiones HTTP de proyectos
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler crea un nuevo ProjectHandler
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/projects
func (h *ProjectHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/projects")
	group.GET("", h.List)
	group.GET("/real-estate/:realEstateId", h.ListByRealEstate)
	group.GET("/:id", h.Get)
	group.GET("/:id/stats", h.Stats)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener proyectos")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListByRealEstate(c *gin.Context) {
	projects, err := h.service.ListProjectsByRealEstate(c.Request.Context(), c.Param("realEstateId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener proyectos de la inmobiliaria")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener proyecto")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear proyecto")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar proyecto")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar proyecto")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Proyecto eliminado correctamente"})
}

func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetProjectStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas del proyecto")
		return
	}
	c.JSON(http.StatusOK, stats)
}
