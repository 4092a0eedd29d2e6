package entity

import "time"

// CategoriaMovimiento categoría de ingresos/gastos. UserID nil para las
// categorías globales del sistema; con valor para las propias del usuario.
type CategoriaMovimiento struct {
	ID        string
	UserID    *string
	Nombre    string
	Tipo      TipoMovimiento
	Icono     string
	Color     string
	Activa    bool
	CreatedAt time.Time
}

// AplicaAGasto indica si la categoría admite gastos.
func (c *CategoriaMovimiento) AplicaAGasto() bool {
	return c.Tipo == MovimientoGasto || c.Tipo == MovimientoAmbos
}

// AplicaAIngreso indica si la categoría admite ingresos.
func (c *CategoriaMovimiento) AplicaAIngreso() bool {
	return c.Tipo == MovimientoIngreso || c.Tipo == MovimientoAmbos
}
