package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Se envuelven con fmt.Errorf("%w: ...") y se comparan con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrAuthorization     = errors.New("operación no permitida para el usuario")
	ErrValidation        = errors.New("validación fallida")
	ErrStorage           = errors.New("almacenamiento no disponible")
	ErrSuggestionService = errors.New("servicio de sugerencias no disponible")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
