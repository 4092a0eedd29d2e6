package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.IngresoRepository = (*IngresoRepo)(nil)

// IngresoRepo implementación de IngresoRepository sobre PostgreSQL.
type IngresoRepo struct {
	q Querier
}

// NewIngresoRepository construye el adaptador de ingresos.
func NewIngresoRepository(q Querier) *IngresoRepo {
	return &IngresoRepo{q: q}
}

const ingresoColumns = `id, user_id, categoria_id, tipo_ingreso_id, fuente, monto, fecha,
	descripcion, es_recurrente, frecuencia_dias, proximo_ingreso, created_at, updated_at`

// Create persiste un nuevo ingreso.
func (r *IngresoRepo) Create(i *entity.Ingreso) error {
	query := `
		INSERT INTO ingresos (id, user_id, categoria_id, tipo_ingreso_id, fuente, monto, fecha,
			descripcion, es_recurrente, frecuencia_dias, proximo_ingreso, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.UserID, i.CategoriaID, int(i.TipoIngreso), i.Fuente, i.Monto, i.Fecha,
		i.Descripcion, i.EsRecurrente, i.FrecuenciaDias, i.ProximoIngreso, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ingreso: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID. (nil, nil) si no existe.
func (r *IngresoRepo) GetByID(id string) (*entity.Ingreso, error) {
	query := `SELECT ` + ingresoColumns + ` FROM ingresos WHERE id = $1`
	var i entity.Ingreso
	var tipoID int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.UserID, &i.CategoriaID, &tipoID, &i.Fuente, &i.Monto, &i.Fecha,
		&i.Descripcion, &i.EsRecurrente, &i.FrecuenciaDias, &i.ProximoIngreso, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingreso by id: %w", err)
	}
	i.TipoIngreso = entity.TipoIngreso(tipoID)
	return &i, nil
}

// ListByUser lista ingresos del usuario en el período, más reciente primero.
func (r *IngresoRepo) ListByUser(userID string, desde, hasta time.Time, limit, offset int) ([]*entity.Ingreso, error) {
	query := `SELECT ` + ingresoColumns + `
		FROM ingresos WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha DESC, created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, userID, desde, hasta, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingresos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingreso
	for rows.Next() {
		var i entity.Ingreso
		var tipoID int
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.CategoriaID, &tipoID, &i.Fuente, &i.Monto, &i.Fecha,
			&i.Descripcion, &i.EsRecurrente, &i.FrecuenciaDias, &i.ProximoIngreso, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ingreso: %w", err)
		}
		i.TipoIngreso = entity.TipoIngreso(tipoID)
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un ingreso.
func (r *IngresoRepo) Update(i *entity.Ingreso) error {
	query := `
		UPDATE ingresos SET categoria_id = $2, tipo_ingreso_id = $3, fuente = $4, monto = $5,
			fecha = $6, descripcion = $7, es_recurrente = $8, frecuencia_dias = $9,
			proximo_ingreso = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.CategoriaID, int(i.TipoIngreso), i.Fuente, i.Monto,
		i.Fecha, i.Descripcion, i.EsRecurrente, i.FrecuenciaDias,
		i.ProximoIngreso, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingreso: %w", err)
	}
	return nil
}

// Delete elimina un ingreso por ID.
func (r *IngresoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingresos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingreso: %w", err)
	}
	return nil
}

// TotalPorPeriodo suma de ingresos del usuario en el período.
func (r *IngresoRepo) TotalPorPeriodo(userID string, desde, hasta time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(monto), 0)
		FROM ingresos WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total ingresos por periodo: %w", err)
	}
	return total, nil
}
