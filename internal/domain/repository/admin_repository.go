package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// EstadisticasGlobales agregados de toda la plataforma para el panel del
// administrador.
type EstadisticasGlobales struct {
	TotalUsuarios int
	TotalIngresos decimal.Decimal
	TotalGastos   decimal.Decimal
}

// ResumenPlataforma corte mensual para los reportes del administrador.
type ResumenPlataforma struct {
	NuevosUsuariosMes    int
	TotalIngresos        decimal.Decimal
	TotalGastos          decimal.Decimal
	CuentasInhabilitadas int
}

// ActividadEmpresa conteos de actividad de una empresa concreta.
type ActividadEmpresa struct {
	Empleados         int
	Proyectos         int
	TareasCompletadas int
}

// AdminRepository consultas de lectura transversales a todos los usuarios.
// Las implementaciones son read-only.
type AdminRepository interface {
	GetEstadisticasGlobales(ctx context.Context) (*EstadisticasGlobales, error)

	// GetResumenPlataforma agrega los totales del mes indicado.
	GetResumenPlataforma(ctx context.Context, mes, anio int) (*ResumenPlataforma, error)

	// GetBalanceUsuario suma de ingresos y gastos de un usuario en toda su
	// historia. Cero si no tiene movimientos.
	GetBalanceUsuario(ctx context.Context, userID string) (ingresos, gastos decimal.Decimal, err error)

	GetActividadEmpresa(ctx context.Context, empresaID string) (*ActividadEmpresa, error)

	// ListUsuariosPorRol lista cuentas de un rol con búsqueda por texto
	// (username, email, nombre) y filtro opcional por estado de la cuenta.
	// Devuelve la página y el total sin paginar.
	ListUsuariosPorRol(
		ctx context.Context,
		rol entity.Rol,
		search string,
		activo *bool,
		limit, offset int,
	) ([]*entity.User, int, error)
}
