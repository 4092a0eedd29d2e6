package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para dar de alta un producto.
type CrearProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=1000"`
	SKU         string          `json:"sku" validate:"required,min=1,max=60"`
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
}

// ActualizarProductoRequest entrada para actualizar un producto.
type ActualizarProductoRequest struct {
	Nombre      string           `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion string           `json:"descripcion" validate:"omitempty,max=1000"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	SKU         string          `json:"sku"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RegistrarVentaRequest entrada para que un empleado registre una venta.
type RegistrarVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
	Notas      string `json:"notas" validate:"omitempty,max=500"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	EmpleadoID     string          `json:"empleado_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	MontoTotal     decimal.Decimal `json:"monto_total"`
	Fecha          time.Time       `json:"fecha"`
	Notas          string          `json:"notas,omitempty"`
}

// ResumenVentasResponse agregado de ventas en un período.
type ResumenVentasResponse struct {
	Conteo         int             `json:"conteo"`
	UnidadesTotal  int             `json:"unidades_total"`
	MontoTotal     decimal.Decimal `json:"monto_total"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
}
