package ports

import "context"

// UnitOfWork define la interface para gerenciamiento de transacciones.
// Los repositorios detectan la transacción activa a través del contexto.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
