package entity

// Catálogos estáticos del dominio financiero. Enums cerrados: el valor cero
// nunca es válido, lo que obliga a inicializar explícitamente.

// TipoMovimiento clasifica una categoría según los movimientos que admite.
type TipoMovimiento int

const (
	MovimientoIngreso TipoMovimiento = 1
	MovimientoGasto   TipoMovimiento = 2
	MovimientoAmbos   TipoMovimiento = 3
)

// Valido indica si el valor pertenece al catálogo.
func (t TipoMovimiento) Valido() bool {
	return t >= MovimientoIngreso && t <= MovimientoAmbos
}

// TipoPago medio de pago de un gasto.
type TipoPago int

const (
	PagoEfectivo      TipoPago = 1
	PagoTarjeta       TipoPago = 2
	PagoTransferencia TipoPago = 3
	PagoOtro          TipoPago = 4
)

func (t TipoPago) Valido() bool { return t >= PagoEfectivo && t <= PagoOtro }

// TipoFactura naturaleza de una factura por pagar.
type TipoFactura int

const (
	FacturaServicio    TipoFactura = 1
	FacturaProducto    TipoFactura = 2
	FacturaSuscripcion TipoFactura = 3
	FacturaOtro        TipoFactura = 4
)

func (t TipoFactura) Valido() bool { return t >= FacturaServicio && t <= FacturaOtro }

// TipoIngreso origen de un ingreso.
type TipoIngreso int

const (
	IngresoSalario   TipoIngreso = 1
	IngresoFreelance TipoIngreso = 2
	IngresoInversion TipoIngreso = 3
	IngresoOtro      TipoIngreso = 4
)

func (t TipoIngreso) Valido() bool { return t >= IngresoSalario && t <= IngresoOtro }

// Prioridad nivel de prioridad para objetivos y tareas.
type Prioridad int

const (
	PrioridadBaja    Prioridad = 1
	PrioridadMedia   Prioridad = 2
	PrioridadAlta    Prioridad = 3
	PrioridadUrgente Prioridad = 4
)

func (p Prioridad) Valido() bool { return p >= PrioridadBaja && p <= PrioridadUrgente }
