package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presupuesto límite mensual de gasto por categoría para un usuario.
type Presupuesto struct {
	ID            string
	UserID        string
	CategoriaID   string
	LimiteMensual decimal.Decimal
	Mes           int // 1-12
	Anio          int
	GastadoActual decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PorcentajeUsado devuelve el porcentaje consumido del límite (sin tope).
// Límite no positivo → 0.
func (p *Presupuesto) PorcentajeUsado() float64 {
	if p.LimiteMensual.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := p.GastadoActual.Div(p.LimiteMensual).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// EstaExcedido indica si el gasto acumulado superó el límite mensual.
func (p *Presupuesto) EstaExcedido() bool {
	return p.GastadoActual.GreaterThan(p.LimiteMensual)
}
