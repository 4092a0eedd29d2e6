package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransaccionReciente movimiento reciente (ingreso o gasto) para el dashboard.
// Lo produce la DB; el use case lo convierte en DTO.
type TransaccionReciente struct {
	Tipo      string // "ingreso" | "gasto"
	Concepto  string
	Categoria string
	Monto     decimal.Decimal
	Fecha     time.Time
}

// DashboardRepository define las consultas de lectura para el resumen
// financiero. Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// GetTotalesPeriodo devuelve la suma de ingresos y de gastos aprobados del
	// usuario en el rango de fechas dado. Usa COALESCE para devolver cero si
	// no hay movimientos en el período.
	GetTotalesPeriodo(
		ctx context.Context,
		userID string,
		desde, hasta time.Time,
	) (ingresos, gastos decimal.Decimal, err error)

	// GetTransaccionesRecientes devuelve los últimos `limit` movimientos del
	// usuario (ingresos y gastos mezclados, más reciente primero).
	GetTransaccionesRecientes(
		ctx context.Context,
		userID string,
		limit int,
	) ([]TransaccionReciente, error)
}
