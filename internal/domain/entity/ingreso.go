package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso representa una entrada de dinero de un usuario.
type Ingreso struct {
	ID             string
	UserID         string
	CategoriaID    string
	TipoIngreso    TipoIngreso
	Fuente         string
	Monto          decimal.Decimal
	Fecha          time.Time
	Descripcion    string
	EsRecurrente   bool
	FrecuenciaDias int
	ProximoIngreso *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CalcularProximoIngreso fija ProximoIngreso = Fecha + FrecuenciaDias cuando
// el ingreso es recurrente; lo limpia en caso contrario.
func (i *Ingreso) CalcularProximoIngreso() {
	if !i.EsRecurrente || i.FrecuenciaDias <= 0 {
		i.ProximoIngreso = nil
		return
	}
	proximo := i.Fecha.AddDate(0, 0, i.FrecuenciaDias)
	i.ProximoIngreso = &proximo
}
