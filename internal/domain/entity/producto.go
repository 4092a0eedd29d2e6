package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto artículo del catálogo de una empresa, con stock disponible.
type Producto struct {
	ID          string
	EmpresaID   string
	Nombre      string
	Descripcion string
	SKU         string
	PrecioVenta decimal.Decimal
	Stock       int
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Venta venta registrada por un empleado. MontoTotal = Cantidad * PrecioUnitario
// al momento de la venta; el precio del producto puede cambiar después.
type Venta struct {
	ID             string
	EmpresaID      string
	EmpleadoID     string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	MontoTotal     decimal.Decimal
	Fecha          time.Time
	Notas          string
	CreatedAt      time.Time
}
