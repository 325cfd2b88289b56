// Package memory datos de referencia fijos que no necesitan almacenamiento.
package memory

import (
	"context"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio estático del selector de perfil.
type UserRepo struct {
	users []entity.User
}

// DefaultUsers los perfiles disponibles: dirección, logística del CD y un gerente por loja.
func DefaultUsers() []entity.User {
	return []entity.User{
		{ID: "admin_geral", Name: "Roberto (Diretoria)", Role: entity.RoleGeneralAdmin, Store: entity.LocationCD},
		{ID: "admin_cd", Name: "Carlos (Logística)", Role: entity.RoleCDAdmin, Store: entity.LocationCD},
		{ID: "gerente_an", Name: "Ana (Gerente)", Role: entity.RoleStoreAdmin, Store: entity.LocationAsaNorte},
		{ID: "gerente_sia", Name: "Marcos (Gerente)", Role: entity.RoleStoreAdmin, Store: entity.LocationSIA},
		{ID: "gerente_ac", Name: "Julia (Gerente)", Role: entity.RoleStoreAdmin, Store: entity.LocationAguasClaras},
	}
}

// NewUserRepository crea el directorio. Sin argumentos usa DefaultUsers.
func NewUserRepository(users ...entity.User) *UserRepo {
	if len(users) == 0 {
		users = DefaultUsers()
	}
	cp := make([]entity.User, len(users))
	copy(cp, users)
	return &UserRepo{users: cp}
}

// List devuelve una copia del directorio.
func (r *UserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetByID busca por identificador.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}
