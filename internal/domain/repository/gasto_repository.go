package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

// TotalCategoria agregado de gastos por categoría en un período.
// Lo produce la DB; el use case lo convierte en DTO.
type TotalCategoria struct {
	CategoriaID string
	Nombre      string
	Total       decimal.Decimal
	Conteo      int
}

// GastoRepository define el puerto de persistencia para Gasto.
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	// ListByUser lista gastos del usuario en el período, más reciente primero.
	ListByUser(userID string, desde, hasta time.Time, limit, offset int) ([]*entity.Gasto, error)
	// ListByUserEstado filtra por estado de aprobación (empleados).
	ListByUserEstado(userID string, estado entity.EstadoAprobacion) ([]*entity.Gasto, error)
	// ListPendientesByEmpresa gastos pendientes de aprobación de los empleados
	// de la empresa, más antiguo primero.
	ListPendientesByEmpresa(empresaID string) ([]*entity.Gasto, error)
	Update(gasto *entity.Gasto) error
	Delete(id string) error

	// Aprobar ejecuta el UPDATE condicional de aprobación: solo toca filas en
	// estado Pendiente que pertenezcan a la empresa. Devuelve false si no
	// afectó ninguna fila (no existe, ajeno, o ya procesado).
	Aprobar(gastoID, empresaID, aprobadorID, comentario string, ahora time.Time) (bool, error)
	// Rechazar análogo a Aprobar con estado Rechazado.
	Rechazar(gastoID, empresaID, aprobadorID, motivo string, ahora time.Time) (bool, error)

	// TotalPorPeriodo suma de gastos aprobados del usuario en el período.
	TotalPorPeriodo(userID string, desde, hasta time.Time) (decimal.Decimal, error)
	// ResumenPorCategoria totales agrupados por categoría en el período.
	ResumenPorCategoria(userID string, desde, hasta time.Time) ([]TotalCategoria, error)
}

// GastoPlanificadoRepository define el puerto para gastos planificados.
type GastoPlanificadoRepository interface {
	Create(plan *entity.GastoPlanificado) error
	GetByID(id string) (*entity.GastoPlanificado, error)
	// ListByUser lista por usuario; estado nil devuelve todos.
	ListByUser(userID string, estado *entity.EstadoPlanificado) ([]*entity.GastoPlanificado, error)
	Update(plan *entity.GastoPlanificado) error
	Delete(id string) error
}
