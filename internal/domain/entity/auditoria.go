package entity

import "time"

// Acciones registradas en la auditoría administrativa.
const (
	AuditoriaEstadoUsuarioCambiado = "USER_STATUS_CHANGED"
	AuditoriaUsuarioCreado         = "USER_CREATED_BY_ADMIN"
	AuditoriaUsuarioActualizado    = "USER_UPDATED_BY_ADMIN"
	AuditoriaEmpleadoDesvinculado  = "EMPLOYEE_REMOVED"
	AuditoriaConfigActualizada     = "SETTINGS_UPDATED"
)

// RegistroAuditoria entrada del registro de auditoría de acciones
// administrativas. Detalles lleva un JSON serializado con el contexto de la
// acción (estado anterior, valores cambiados).
type RegistroAuditoria struct {
	ID         string
	UserID     string // administrador que ejecutó la acción
	Accion     string
	TargetTipo string
	TargetID   string
	Detalles   string
	CreatedAt  time.Time
}

// Configuracion par clave/valor de configuración del sistema.
type Configuracion struct {
	Clave string
	Valor string
}
