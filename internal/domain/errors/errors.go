package errors

import "errors"

// Kind clasifica un error de dominio para que la capa HTTP pueda
// mapearlo a un status fijo sin conocer la entidad involucrada.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
)

// Error representa un error de negocio con mensaje para el cliente.
// El mensaje se devuelve tal cual en el cuerpo {message: ...}.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound indica que un id referenciado (propio o foráneo) no existe.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation indica una precondición incumplida (duplicado, datos inválidos).
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict indica un borrado bloqueado por filas dependientes.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized indica credenciales inválidas.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// ErrInvalidCredentials se usa tanto para email inexistente como para
// contraseña incorrecta, a propósito, para no filtrar cuál falló.
var ErrInvalidCredentials = Unauthorized("Credenciales inválidas")

// ErrDuplicated lo devuelven los repositorios cuando el almacenamiento
// rechaza una escritura por violación de índice único. Los servicios lo
// traducen al mismo mensaje que la verificación previa de unicidad: el
// índice es el respaldo autoritativo contra la carrera check-then-write.
var ErrDuplicated = errors.New("duplicated key")

// As extrae un *Error de la cadena de errores.
func As(err error) (*Error, bool) {
	var derr *Error
	ok := errors.As(err, &derr)
	return derr, ok
}
