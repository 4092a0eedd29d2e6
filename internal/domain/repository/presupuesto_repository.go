package repository

import (
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// PresupuestoRepository define el puerto de persistencia para presupuestos
// mensuales por categoría.
type PresupuestoRepository interface {
	Create(p *entity.Presupuesto) error
	GetByID(id string) (*entity.Presupuesto, error)
	// GetByCategoriaMes presupuesto del usuario para esa categoría y mes;
	// (nil, nil) si no existe.
	GetByCategoriaMes(userID, categoriaID string, mes, anio int) (*entity.Presupuesto, error)
	ListByUser(userID string, mes, anio int) ([]*entity.Presupuesto, error)
	Update(p *entity.Presupuesto) error
	Delete(id string) error
	// AcumularGasto suma monto al gasto acumulado del presupuesto.
	AcumularGasto(presupuestoID string, monto decimal.Decimal) error
}
