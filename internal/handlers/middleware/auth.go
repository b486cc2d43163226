package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inmocrm/backend/internal/infrastructure/auth"
)

const userIDKey = "auth_user_id"

// JWTAuth exige un Bearer token válido y deja el id de usuario en el
// contexto de gin para los handlers protegidos.
func JWTAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token no proporcionado"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID devuelve el id de usuario dejado por JWTAuth
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
