package repository

import (
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// ObjetivoRepository define el puerto de persistencia para objetivos de ahorro
// y su historial de movimientos. Los métodos de saldo están pensados para
// ejecutarse dentro de una transacción junto con CrearMovimiento.
type ObjetivoRepository interface {
	Create(objetivo *entity.Objetivo) error
	GetByID(id string) (*entity.Objetivo, error)
	ListByUser(userID string) ([]*entity.Objetivo, error)
	Update(objetivo *entity.Objetivo) error
	Delete(id string) error

	// AgregarAhorro incrementa el saldo del objetivo en monto.
	AgregarAhorro(objetivoID string, monto decimal.Decimal) error
	// RetirarAhorro decrementa el saldo solo si hay fondos suficientes
	// (UPDATE condicional). Devuelve false cuando no afectó ninguna fila.
	RetirarAhorro(objetivoID string, monto decimal.Decimal) (bool, error)

	CrearMovimiento(mov *entity.ObjetivoMovimiento) error
	// ListMovimientos historial del objetivo, más reciente primero.
	ListMovimientos(objetivoID string, limit, offset int) ([]*entity.ObjetivoMovimiento, error)
}
