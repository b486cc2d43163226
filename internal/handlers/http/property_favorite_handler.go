package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/handlers/dto"
	"github.com/inmocrm/backend/internal/services"
)

// PropertyFavoriteHandler atiende las peticiones HTTP de favoritos
type PropertyFavoriteHandler struct {
	service *services.PropertyFavoriteService
}

// NewPropertyFavoriteHandler crea un nuevo PropertyFavoriteHandler
func NewPropertyFavoriteHandler(service *services.PropertyFavoriteService) *PropertyFavoriteHandler {
	return &PropertyFavoriteHandler{service: service}
}

// RegisterRoutes registra las rutas bajo /api/property-favorites.
// /client/:clientId es un alias histórico de /user/:userId.
func (h *PropertyFavoriteHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/property-favorites")
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/user/:userId", h.ListByUser)
	group.GET("/client/:clientId", h.ListByClient)
	group.GET("/property/:propertyId", h.ListByProperty)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *PropertyFavoriteHandler) List(c *gin.Context) {
	favorites, err := h.service.ListFavorites(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener los favoritos")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *PropertyFavoriteHandler) ListByUser(c *gin.Context) {
	favorites, err := h.service.ListFavoritesByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener los favoritos del usuario")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *PropertyFavoriteHandler) ListByClient(c *gin.Context) {
	favorites, err := h.service.ListFavoritesByUser(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener los favoritos del usuario")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *PropertyFavoriteHandler) ListByProperty(c *gin.Context) {
	favorites, err := h.service.ListFavoritesByProperty(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener los favoritos de la propiedad")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *PropertyFavoriteHandler) Get(c *gin.Context) {
	favorite, err := h.service.GetFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err, "Error al obtener favorito")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

func (h *PropertyFavoriteHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	favorite, err := h.service.CreateFavorite(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al crear favorito")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *PropertyFavoriteHandler) Update(c *gin.Context) {
	var req dto.UpdatePropertyFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindError(c, err)
		return
	}

	favorite, err := h.service.UpdateFavorite(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err, "Error al actualizar favorito")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

func (h *PropertyFavoriteHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteFavorite(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err, "Error al eliminar favorito")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Favorito eliminado correctamente"})
}

func (h *PropertyFavoriteHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetFavoriteStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err, "Error al obtener estadísticas")
		return
	}
	c.JSON(http.StatusOK, stats)
}
