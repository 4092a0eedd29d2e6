package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadisticasAdminResponse totales de la plataforma para el panel admin.
type EstadisticasAdminResponse struct {
	TotalUsuarios int             `json:"total_usuarios"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalGastos   decimal.Decimal `json:"total_gastos"`
	BalanceTotal  decimal.Decimal `json:"balance_total"`
}

// ActividadRecienteResponse entrada de auditoría con el email del actor
// resuelto.
type ActividadRecienteResponse struct {
	Email    string    `json:"email"`
	Accion   string    `json:"accion"`
	Detalles string    `json:"detalles,omitempty"`
	Fecha    time.Time `json:"fecha"`
}

// ListarUsuariosAdminRequest filtros del listado de usuarios del panel admin.
type ListarUsuariosAdminRequest struct {
	Search string `query:"search"`
	// Estado "activo", "inactivo" o vacío (todos).
	Estado string `query:"estado" validate:"omitempty,oneof=activo inactivo"`
	PageRequest
}

// UsuariosPaginadosResponse página de usuarios con metadatos.
type UsuariosPaginadosResponse struct {
	Usuarios []*UserResponse `json:"usuarios"`
	Page     PageResponse    `json:"page"`
}

// CrearUsuarioAdminRequest alta de cuenta desde el panel admin. El username
// se deriva del email si no se indica.
type CrearUsuarioAdminRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	RolID     int    `json:"rol_id"`
}

// ActualizarUsuarioAdminRequest cambios parciales sobre una cuenta.
type ActualizarUsuarioAdminRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	RolID     *int    `json:"rol_id"`
}

// CambiarEstadoUsuarioRequest habilita o inhabilita una cuenta.
type CambiarEstadoUsuarioRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

// BalanceUsuarioResponse balance histórico de un usuario.
type BalanceUsuarioResponse struct {
	Usuario       *UserResponse   `json:"usuario"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalGastos   decimal.Decimal `json:"total_gastos"`
	BalanceNeto   decimal.Decimal `json:"balance_neto"`
}

// EmpresaDetalleResponse ficha de una empresa con su actividad.
type EmpresaDetalleResponse struct {
	Empresa           *UserResponse `json:"empresa"`
	Empleados         int           `json:"empleados"`
	Proyectos         int           `json:"proyectos"`
	TareasCompletadas int           `json:"tareas_completadas"`
}

// ResumenPlataformaResponse corte mensual para reportes del administrador.
type ResumenPlataformaResponse struct {
	NuevosUsuariosMes    int             `json:"nuevos_usuarios_mes"`
	TotalIngresos        decimal.Decimal `json:"total_ingresos"`
	TotalGastos          decimal.Decimal `json:"total_gastos"`
	CuentasInhabilitadas int             `json:"cuentas_inhabilitadas"`
}

// ActualizarConfiguracionRequest valores de configuración a guardar.
type ActualizarConfiguracionRequest struct {
	Valores map[string]string `json:"valores" validate:"required,min=1"`
}
