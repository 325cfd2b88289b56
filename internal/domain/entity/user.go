package entity

// Role perfil de acceso. Conjunto cerrado: todo consumidor debe cubrir los tres casos.
type Role string

// Roles válidos para User.
const (
	RoleGeneralAdmin Role = "GENERAL_ADMIN"
	RoleCDAdmin      Role = "CD_ADMIN"
	RoleStoreAdmin   Role = "STORE_ADMIN"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleGeneralAdmin, RoleCDAdmin, RoleStoreAdmin:
		return true
	default:
		return false
	}
}

// Label nombre del perfil mostrado en pantalla.
func (r Role) Label() string {
	switch r {
	case RoleGeneralAdmin:
		return "ADMINISTRADOR GERAL"
	case RoleCDAdmin:
		return "ADMINISTRADOR CD"
	case RoleStoreAdmin:
		return "ADMINISTRADOR LOJA"
	default:
		return string(r)
	}
}

// User usuario predefinido del sistema (se selecciona, no se registra).
type User struct {
	ID    string
	Name  string
	Role  Role
	Store Location // local de origen; para los admins es el CD
}
