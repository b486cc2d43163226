package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/handlers/middleware"
	"github.com/inmocrm/backend/internal/services"
)

// UserHandler atiende las peticiones HTTP de usuarios y autenticación
type UserHandler struct {
	service *services.UserService
	auth    gin.HandlerFunc
}

// NewUserHandler crea un nuevo UserHandler. auth protege GET /me.
func NewUserHandler(service *services.UserService, auth gin.HandlerFunc) *UserHandler {
	return &UserHandler{service: service, auth: auth}
}

// RegisterRoutes registra las rutas bajo /api/users
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/users")
	group.GET("", h.List)
	group.GET("/me", h.auth, h.Me)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.POST("/login", h.Login)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener usuarios")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener usuario")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear usuario")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar usuario")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar usuario")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado correctamente"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondError(c, err, "Error en login")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Me devuelve el perfil enriquecido del usuario autenticado
func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		dto.RespondError(c, err, "Error al obtener usuario")
		return
	}
	c.JSON(http.StatusOK, user)
}
