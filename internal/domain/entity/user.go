package entity

import "time"

// Rol del usuario. Enum cerrado: el valor cero no es un rol válido.
type Rol int

const (
	RolAdmin    Rol = 1
	RolEmpresa  Rol = 2
	RolEmpleado Rol = 3
	RolUsuario  Rol = 4
)

// Valido indica si el valor pertenece al catálogo de roles.
func (r Rol) Valido() bool { return r >= RolAdmin && r <= RolUsuario }

// Codigo devuelve el código textual del rol (usado en el JWT y en rutas RBAC).
func (r Rol) Codigo() string {
	switch r {
	case RolAdmin:
		return "admin"
	case RolEmpresa:
		return "empresa"
	case RolEmpleado:
		return "empleado"
	case RolUsuario:
		return "usuario"
	default:
		return ""
	}
}

// RolDesdeCodigo convierte el código textual a Rol. ok=false si no existe.
func RolDesdeCodigo(codigo string) (Rol, bool) {
	switch codigo {
	case "admin":
		return RolAdmin, true
	case "empresa":
		return RolEmpresa, true
	case "empleado":
		return RolEmpleado, true
	case "usuario":
		return RolUsuario, true
	default:
		return 0, false
	}
}

// User representa una cuenta del sistema: usuario personal, empresa o empleado.
// CreatedByEmpresaID enlaza a un empleado con la empresa que lo dio de alta.
type User struct {
	ID                 string
	Username           string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName          string
	LastName           string
	Phone              string
	Rol                Rol
	CreatedByEmpresaID *string
	IsActive           bool
	IsVerified         bool
	LastLogin          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EsEmpleadoDe indica si el usuario es un empleado dado de alta por la empresa.
func (u *User) EsEmpleadoDe(empresaID string) bool {
	return u.Rol == RolEmpleado && u.CreatedByEmpresaID != nil && *u.CreatedByEmpresaID == empresaID
}

// NombreCompleto concatena nombre y apellido.
func (u *User) NombreCompleto() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
