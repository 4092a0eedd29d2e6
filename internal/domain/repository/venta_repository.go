package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// ResumenVentas agregado de ventas en un período.
type ResumenVentas struct {
	Conteo         int
	UnidadesTotal  int
	MontoTotal     decimal.Decimal
	TicketPromedio decimal.Decimal
}

// VentaRepository define el puerto de persistencia para ventas.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	ListByEmpleado(empleadoID string, desde, hasta time.Time) ([]*entity.Venta, error)
	ListByEmpresa(empresaID string, desde, hasta time.Time) ([]*entity.Venta, error)
	ResumenEmpleado(empleadoID string, desde, hasta time.Time) (*ResumenVentas, error)
	ResumenEmpresa(empresaID string, desde, hasta time.Time) (*ResumenVentas, error)
}
