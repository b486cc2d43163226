package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/inmocrm/backend/internal/domain/errors"
)

// translateError convierte errores del driver a errores de dominio.
// Requiere TranslateError en la config de GORM para que las violaciones
// de índice único lleguen como gorm.ErrDuplicatedKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrDuplicated
	}
	return err
}
