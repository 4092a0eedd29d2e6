package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.PresupuestoRepository = (*PresupuestoRepo)(nil)

// PresupuestoRepo implementación de PresupuestoRepository sobre PostgreSQL.
type PresupuestoRepo struct {
	q Querier
}

// NewPresupuestoRepository construye el adaptador de presupuestos.
func NewPresupuestoRepository(q Querier) *PresupuestoRepo {
	return &PresupuestoRepo{q: q}
}

const presupuestoColumns = `id, user_id, categoria_id, limite_mensual, mes, anio,
	gastado_actual, created_at, updated_at`

// Create persiste un nuevo presupuesto. Duplicado (usuario+categoría+mes) → ErrDuplicate.
func (r *PresupuestoRepo) Create(p *entity.Presupuesto) error {
	query := `
		INSERT INTO presupuestos (id, user_id, categoria_id, limite_mensual, mes, anio,
			gastado_actual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.CategoriaID, p.LimiteMensual, p.Mes, p.Anio,
		p.GastadoActual, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert presupuesto: %w", err)
	}
	return nil
}

// GetByID obtiene un presupuesto por ID. (nil, nil) si no existe.
func (r *PresupuestoRepo) GetByID(id string) (*entity.Presupuesto, error) {
	query := `SELECT ` + presupuestoColumns + ` FROM presupuestos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get presupuesto by id")
}

// GetByCategoriaMes presupuesto del usuario para esa categoría y mes. (nil, nil) si no existe.
func (r *PresupuestoRepo) GetByCategoriaMes(userID, categoriaID string, mes, anio int) (*entity.Presupuesto, error) {
	query := `SELECT ` + presupuestoColumns + `
		FROM presupuestos WHERE user_id = $1 AND categoria_id = $2 AND mes = $3 AND anio = $4`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, categoriaID, mes, anio), "get presupuesto por categoria y mes")
}

func (r *PresupuestoRepo) scanOne(row pgx.Row, op string) (*entity.Presupuesto, error) {
	var p entity.Presupuesto
	err := row.Scan(
		&p.ID, &p.UserID, &p.CategoriaID, &p.LimiteMensual, &p.Mes, &p.Anio,
		&p.GastadoActual, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListByUser presupuestos del usuario para el mes dado.
func (r *PresupuestoRepo) ListByUser(userID string, mes, anio int) ([]*entity.Presupuesto, error) {
	query := `SELECT ` + presupuestoColumns + `
		FROM presupuestos WHERE user_id = $1 AND mes = $2 AND anio = $3
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID, mes, anio)
	if err != nil {
		return nil, fmt.Errorf("list presupuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Presupuesto
	for rows.Next() {
		var p entity.Presupuesto
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CategoriaID, &p.LimiteMensual, &p.Mes, &p.Anio,
			&p.GastadoActual, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan presupuesto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un presupuesto.
func (r *PresupuestoRepo) Update(p *entity.Presupuesto) error {
	query := `
		UPDATE presupuestos SET limite_mensual = $2, gastado_actual = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.LimiteMensual, p.GastadoActual, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update presupuesto: %w", err)
	}
	return nil
}

// Delete elimina un presupuesto por ID.
func (r *PresupuestoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM presupuestos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete presupuesto: %w", err)
	}
	return nil
}

// AcumularGasto suma monto al gasto acumulado del presupuesto.
func (r *PresupuestoRepo) AcumularGasto(presupuestoID string, monto decimal.Decimal) error {
	query := `
		UPDATE presupuestos SET gastado_actual = gastado_actual + $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, presupuestoID, monto)
	if err != nil {
		return fmt.Errorf("acumular gasto presupuesto: %w", err)
	}
	return nil
}
