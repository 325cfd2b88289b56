package dto

// UserResponse usuario predefinido tal como lo muestra el selector de perfil.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	RoleLabel  string `json:"role_label"`
	Store      string `json:"store"`
	StoreLabel string `json:"store_label"`
}

// LoginRequest selección de perfil: no hay contraseña.
type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// LoginResponse token JWT del usuario seleccionado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
