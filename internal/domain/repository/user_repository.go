package repository

import (
	"context"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// UserRepository directorio de usuarios predefinidos (solo lectura).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
