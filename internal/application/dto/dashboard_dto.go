package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenFinancieroResponse respuesta de GET /api/v1/financial/dashboard.
// KPIs del período solicitado (mes_actual, mes_anterior o anio_actual).
type ResumenFinancieroResponse struct {
	Periodo       string          `json:"periodo"`
	Desde         time.Time       `json:"desde"`
	Hasta         time.Time       `json:"hasta"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalGastos   decimal.Decimal `json:"total_gastos"`
	Balance       decimal.Decimal `json:"balance"`

	// Objetivo de mayor prioridad del usuario, si tiene alguno.
	ObjetivoPrincipal *ObjetivoResponse `json:"objetivo_principal,omitempty"`

	// Facturas pendientes de pago (incluye las vencidas).
	FacturasPendientes int             `json:"facturas_pendientes"`
	MontoPorPagar      decimal.Decimal `json:"monto_por_pagar"`

	// Últimos movimientos (ingresos y gastos mezclados).
	TransaccionesRecientes []TransaccionResponse `json:"transacciones_recientes"`
}

// TransaccionResponse movimiento reciente para el widget del dashboard.
type TransaccionResponse struct {
	Tipo      string          `json:"tipo"` // "ingreso" | "gasto"
	Concepto  string          `json:"concepto"`
	Categoria string          `json:"categoria,omitempty"`
	Monto     decimal.Decimal `json:"monto"`
	Fecha     time.Time       `json:"fecha"`
}
