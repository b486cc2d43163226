package dto

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/inmocrm/backend/internal/domain/errors"
)

// MessageResponse es el cuerpo único de error y de confirmación: {message}
type MessageResponse struct {
	Message string `json:"message"`
}

func statusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindValidation, errors.KindConflict:
		return http.StatusBadRequest
	case errors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError mapea un error de dominio a su status y mensaje. Cualquier
// error no clasificado responde 500 con el mensaje genérico de la operación.
func RespondError(c *gin.Context, err error, fallback string) {
	if derr, ok := errors.As(err); ok {
		c.JSON(statusFor(derr.Kind), MessageResponse{Message: derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: fallback})
}

// RespondBindError responde 400 desglosando los campos que fallaron el binding
func RespondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, MessageResponse{
			Message: "Datos inválidos en los campos: " + strings.Join(fields, ", "),
		})
		return
	}
	c.JSON(http.StatusBadRequest, MessageResponse{Message: "Cuerpo de la petición inválido"})
}
