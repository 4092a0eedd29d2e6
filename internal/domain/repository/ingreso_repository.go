package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// IngresoRepository define el puerto de persistencia para Ingreso.
type IngresoRepository interface {
	Create(ingreso *entity.Ingreso) error
	GetByID(id string) (*entity.Ingreso, error)
	ListByUser(userID string, desde, hasta time.Time, limit, offset int) ([]*entity.Ingreso, error)
	Update(ingreso *entity.Ingreso) error
	Delete(id string) error
	// TotalPorPeriodo suma de ingresos del usuario en el período.
	TotalPorPeriodo(userID string, desde, hasta time.Time) (decimal.Decimal, error)
}
