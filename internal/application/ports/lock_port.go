package ports

import "context"

// Locker exclusión mutua por clave (ID de la ocorrência).
// Lock bloquea hasta obtener el candado o hasta que ctx termine; unlock es idempotente.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
