package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoFactura estado de una factura por pagar.
type EstadoFactura int

const (
	FacturaPendiente EstadoFactura = 1
	FacturaPagada    EstadoFactura = 2
	FacturaVencida   EstadoFactura = 3
)

func (e EstadoFactura) Valido() bool { return e >= FacturaPendiente && e <= FacturaVencida }

// Codigo devuelve el código textual del estado.
func (e EstadoFactura) Codigo() string {
	switch e {
	case FacturaPendiente:
		return "pendiente"
	case FacturaPagada:
		return "pagada"
	case FacturaVencida:
		return "vencida"
	default:
		return ""
	}
}

// Factura cuenta por pagar de un usuario. El estado Vencida se deriva de forma
// perezosa: una Pendiente con fecha de vencimiento pasada se considera vencida
// al consultarla y la transición se persiste en ese momento.
type Factura struct {
	ID               string
	UserID           string
	Nombre           string
	TipoFactura      TipoFactura
	Monto            decimal.Decimal
	FechaVencimiento time.Time
	Estado           EstadoFactura
	UltimoPago       *time.Time
	EsRecurrente     bool
	FrecuenciaDias   int
	Notas            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EstaVencida indica si la factura sigue pendiente con la fecha ya pasada.
func (f *Factura) EstaVencida(ahora time.Time) bool {
	return f.Estado == FacturaPendiente && f.FechaVencimiento.Before(ahora)
}

// EstadoEfectivo devuelve el estado considerando el vencimiento perezoso.
func (f *Factura) EstadoEfectivo(ahora time.Time) EstadoFactura {
	if f.EstaVencida(ahora) {
		return FacturaVencida
	}
	return f.Estado
}

// DiasParaVencimiento días hasta el vencimiento; negativo si ya pasó.
func (f *Factura) DiasParaVencimiento(ahora time.Time) int {
	return int(f.FechaVencimiento.Sub(ahora).Hours() / 24)
}

// AvanzarVencimiento corre la fecha de vencimiento según la frecuencia y
// reinicia el estado a Pendiente. Solo aplica a facturas recurrentes.
func (f *Factura) AvanzarVencimiento() {
	if !f.EsRecurrente || f.FrecuenciaDias <= 0 {
		return
	}
	f.FechaVencimiento = f.FechaVencimiento.AddDate(0, 0, f.FrecuenciaDias)
	f.Estado = FacturaPendiente
}
