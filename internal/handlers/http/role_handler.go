package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// RoleHandler atiende las peticiones HTTP de roles y permisos
type RoleHandler struct {
	service *services.RoleService
}

// NewRoleHandler crea un nuevo RoleHandler
func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/roles
func (h *RoleHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/roles")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/permissions", h.GetPermissions)
	group.POST("", h.Create)
	group.POST("/:id/permissions", h.AssignPermissions)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener roles")
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	role, err := h.service.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener rol")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear rol")
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) Update(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	role, err := h.service.UpdateRole(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar rol")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar rol")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Rol eliminado exitosamente"})
}

func (h *RoleHandler) GetPermissions(c *gin.Context) {
	permissions, err := h.service.GetRolePermissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener permisos del rol")
		return
	}
	c.JSON(http.StatusOK, permissions)
}

func (h *RoleHandler) AssignPermissions(c *gin.Context) {
	var req dto.AssignPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	if err := h.service.AssignPermissions(c.Request.Context(), c.Param("id"), req.ToAssignments()); err != nil {
		dto.RespondError(c, err, "Error al asignar permisos")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Permisos asignados exitosamente"})
}
