package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Objetivo meta de ahorro de un usuario. AhorroActual solo se modifica vía
// aportes y retiros registrados en ObjetivoMovimiento; nunca queda negativo.
type Objetivo struct {
	ID           string
	UserID       string
	Nombre       string
	Descripcion  string
	MetaTotal    decimal.Decimal
	AhorroActual decimal.Decimal
	FechaLimite  *time.Time
	Prioridad    Prioridad
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProgresoPorcentaje devuelve el avance hacia la meta, acotado a [0, 100].
// Meta no positiva → 0.
func (o *Objetivo) ProgresoPorcentaje() float64 {
	if o.MetaTotal.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := o.AhorroActual.Div(o.MetaTotal).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// MontoRestante devuelve cuánto falta para la meta (mínimo cero).
func (o *Objetivo) MontoRestante() decimal.Decimal {
	restante := o.MetaTotal.Sub(o.AhorroActual)
	if restante.IsNegative() {
		return decimal.Zero
	}
	return restante
}

// Completado indica si el ahorro alcanzó o superó la meta.
func (o *Objetivo) Completado() bool {
	return o.MetaTotal.GreaterThan(decimal.Zero) && o.AhorroActual.GreaterThanOrEqual(o.MetaTotal)
}

// ObjetivoMovimiento entrada del historial de aportes y retiros de un objetivo.
// El historial es append-only: la suma de aportes menos retiros debe coincidir
// siempre con AhorroActual.
type ObjetivoMovimiento struct {
	ID          string
	ObjetivoID  string
	Monto       decimal.Decimal
	EsAporte    bool
	Descripcion string
	Fecha       time.Time
}

// MontoConSigno devuelve el monto positivo para aportes y negativo para retiros.
func (m *ObjetivoMovimiento) MontoConSigno() decimal.Decimal {
	if m.EsAporte {
		return m.Monto
	}
	return m.Monto.Neg()
}
