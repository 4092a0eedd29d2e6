package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearFacturaRequest entrada para registrar una factura por pagar.
type CrearFacturaRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	TipoFacturaID    int             `json:"tipo_factura_id" validate:"required,min=1,max=4"`
	Monto            decimal.Decimal `json:"monto" validate:"required"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento" validate:"required"`
	EsRecurrente     bool            `json:"es_recurrente"`
	FrecuenciaDias   int             `json:"frecuencia_dias" validate:"omitempty,min=1,max=365"`
	Notas            string          `json:"notas" validate:"omitempty,max=1000"`
}

// FacturaResponse salida de una factura con derivados de vencimiento.
type FacturaResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	TipoFacturaID       int             `json:"tipo_factura_id"`
	Monto               decimal.Decimal `json:"monto"`
	FechaVencimiento    time.Time       `json:"fecha_vencimiento"`
	Estado              string          `json:"estado"`
	DiasParaVencimiento int             `json:"dias_para_vencimiento"`
	UltimoPago          *time.Time      `json:"ultimo_pago,omitempty"`
	EsRecurrente        bool            `json:"es_recurrente"`
	FrecuenciaDias      int             `json:"frecuencia_dias,omitempty"`
	Notas               string          `json:"notas,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ResumenFacturasResponse agregado de facturas del usuario.
type ResumenFacturasResponse struct {
	Pendientes     int              `json:"pendientes"`
	Vencidas       int              `json:"vencidas"`
	Pagadas        int              `json:"pagadas"`
	MontoPendiente decimal.Decimal  `json:"monto_pendiente"`
	ProximaAVencer *FacturaResponse `json:"proxima_a_vencer,omitempty"`
}
