package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.GastoPlanificadoRepository = (*GastoPlanificadoRepo)(nil)

// GastoPlanificadoRepo implementación de GastoPlanificadoRepository sobre PostgreSQL.
type GastoPlanificadoRepo struct {
	q Querier
}

// NewGastoPlanificadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoPlanificadoRepository(q Querier) *GastoPlanificadoRepo {
	return &GastoPlanificadoRepo{q: q}
}

const planColumns = `id, user_id, categoria_id, concepto, monto_estimado, fecha_planificada,
	es_recurrente, frecuencia_dias, estado_id, gasto_generado_id, notas, created_at, updated_at`

// Create persiste un nuevo gasto planificado.
func (r *GastoPlanificadoRepo) Create(p *entity.GastoPlanificado) error {
	query := `
		INSERT INTO gastos_planificados (id, user_id, categoria_id, concepto, monto_estimado,
			fecha_planificada, es_recurrente, frecuencia_dias, estado_id, gasto_generado_id,
			notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.CategoriaID, p.Concepto, p.MontoEstimado,
		p.FechaPlanificada, p.EsRecurrente, p.FrecuenciaDias, int(p.Estado), p.GastoGeneradoID,
		p.Notas, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto planificado: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto planificado por ID. (nil, nil) si no existe.
func (r *GastoPlanificadoRepo) GetByID(id string) (*entity.GastoPlanificado, error) {
	query := `SELECT ` + planColumns + ` FROM gastos_planificados WHERE id = $1`
	var p entity.GastoPlanificado
	var estadoID int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.CategoriaID, &p.Concepto, &p.MontoEstimado, &p.FechaPlanificada,
		&p.EsRecurrente, &p.FrecuenciaDias, &estadoID, &p.GastoGeneradoID,
		&p.Notas, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto planificado by id: %w", err)
	}
	p.Estado = entity.EstadoPlanificado(estadoID)
	return &p, nil
}

// ListByUser lista por usuario; estado nil devuelve todos, próximos primero.
func (r *GastoPlanificadoRepo) ListByUser(userID string, estado *entity.EstadoPlanificado) ([]*entity.GastoPlanificado, error) {
	query := `SELECT ` + planColumns + ` FROM gastos_planificados WHERE user_id = $1`
	args := []any{userID}
	if estado != nil {
		query += ` AND estado_id = $2`
		args = append(args, int(*estado))
	}
	query += ` ORDER BY fecha_planificada ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos planificados: %w", err)
	}
	defer rows.Close()
	var list []*entity.GastoPlanificado
	for rows.Next() {
		var p entity.GastoPlanificado
		var estadoID int
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CategoriaID, &p.Concepto, &p.MontoEstimado, &p.FechaPlanificada,
			&p.EsRecurrente, &p.FrecuenciaDias, &estadoID, &p.GastoGeneradoID,
			&p.Notas, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gasto planificado: %w", err)
		}
		p.Estado = entity.EstadoPlanificado(estadoID)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un gasto planificado.
func (r *GastoPlanificadoRepo) Update(p *entity.GastoPlanificado) error {
	query := `
		UPDATE gastos_planificados SET categoria_id = $2, concepto = $3, monto_estimado = $4,
			fecha_planificada = $5, es_recurrente = $6, frecuencia_dias = $7, estado_id = $8,
			gasto_generado_id = $9, notas = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Concepto, p.MontoEstimado,
		p.FechaPlanificada, p.EsRecurrente, p.FrecuenciaDias, int(p.Estado),
		p.GastoGeneradoID, p.Notas, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update gasto planificado: %w", err)
	}
	return nil
}

// Delete elimina un gasto planificado por ID.
func (r *GastoPlanificadoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gastos_planificados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto planificado: %w", err)
	}
	return nil
}
