package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
	"github.com/jhoicas/Litigios-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase selector de perfil: no hay registro ni contraseña, el usuario
// elige uno de los perfiles predefinidos y recibe un token con esa selección.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// ListUsers perfiles disponibles en el selector.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// Login emite el token del perfil elegido.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	id := strings.TrimSpace(in.UserID)
	if id == "" {
		return nil, fmt.Errorf("%w: user_id es obligatorio", domain.ErrValidation)
	}
	user, err := uc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), string(user.Store), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: ToUserResponse(*user)}, nil
}

// GetUser devuelve el usuario del directorio o ErrUnauthorized si no existe
// (un token con un perfil eliminado deja de valer).
func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: perfil %q inexistente", domain.ErrUnauthorized, id)
	}
	return u, nil
}

// ToUserResponse mapea la entidad al DTO.
func ToUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Role:       string(u.Role),
		RoleLabel:  u.Role.Label(),
		Store:      string(u.Store),
		StoreLabel: u.Store.Label(),
	}
}
