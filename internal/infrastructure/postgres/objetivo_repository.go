package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.ObjetivoRepository = (*ObjetivoRepo)(nil)

// ObjetivoRepo implementación de ObjetivoRepository sobre PostgreSQL (usable con pool o tx).
type ObjetivoRepo struct {
	q Querier
}

// NewObjetivoRepository construye el adaptador de objetivos. Pasar pool o tx (Querier).
func NewObjetivoRepository(q Querier) *ObjetivoRepo {
	return &ObjetivoRepo{q: q}
}

const objetivoColumns = `id, user_id, nombre, descripcion, meta_total, ahorro_actual,
	fecha_limite, prioridad_id, created_at, updated_at`

// Create persiste un nuevo objetivo.
func (r *ObjetivoRepo) Create(o *entity.Objetivo) error {
	query := `
		INSERT INTO objetivos (id, user_id, nombre, descripcion, meta_total, ahorro_actual,
			fecha_limite, prioridad_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.UserID, o.Nombre, o.Descripcion, o.MetaTotal, o.AhorroActual,
		o.FechaLimite, int(o.Prioridad), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert objetivo: %w", err)
	}
	return nil
}

// GetByID obtiene un objetivo por ID. (nil, nil) si no existe.
func (r *ObjetivoRepo) GetByID(id string) (*entity.Objetivo, error) {
	query := `SELECT ` + objetivoColumns + ` FROM objetivos WHERE id = $1`
	var o entity.Objetivo
	var prioridadID int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Nombre, &o.Descripcion, &o.MetaTotal, &o.AhorroActual,
		&o.FechaLimite, &prioridadID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get objetivo by id: %w", err)
	}
	o.Prioridad = entity.Prioridad(prioridadID)
	return &o, nil
}

// ListByUser lista los objetivos del usuario, prioridad más alta primero.
func (r *ObjetivoRepo) ListByUser(userID string) ([]*entity.Objetivo, error) {
	query := `SELECT ` + objetivoColumns + `
		FROM objetivos WHERE user_id = $1
		ORDER BY prioridad_id DESC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list objetivos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Objetivo
	for rows.Next() {
		var o entity.Objetivo
		var prioridadID int
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Nombre, &o.Descripcion, &o.MetaTotal, &o.AhorroActual,
			&o.FechaLimite, &prioridadID, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan objetivo: %w", err)
		}
		o.Prioridad = entity.Prioridad(prioridadID)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza los datos descriptivos de un objetivo (no el saldo).
func (r *ObjetivoRepo) Update(o *entity.Objetivo) error {
	query := `
		UPDATE objetivos SET nombre = $2, descripcion = $3, meta_total = $4,
			fecha_limite = $5, prioridad_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Nombre, o.Descripcion, o.MetaTotal, o.FechaLimite, int(o.Prioridad), o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update objetivo: %w", err)
	}
	return nil
}

// Delete elimina un objetivo y su historial (FK ON DELETE CASCADE).
func (r *ObjetivoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM objetivos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete objetivo: %w", err)
	}
	return nil
}

// AgregarAhorro incrementa el saldo del objetivo en monto.
func (r *ObjetivoRepo) AgregarAhorro(objetivoID string, monto decimal.Decimal) error {
	query := `
		UPDATE objetivos SET ahorro_actual = ahorro_actual + $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, objetivoID, monto)
	if err != nil {
		return fmt.Errorf("agregar ahorro: %w", err)
	}
	return nil
}

// RetirarAhorro decrementa el saldo solo si alcanza (UPDATE condicional).
// El saldo nunca puede quedar negativo, ni con retiros concurrentes.
func (r *ObjetivoRepo) RetirarAhorro(objetivoID string, monto decimal.Decimal) (bool, error) {
	query := `
		UPDATE objetivos SET ahorro_actual = ahorro_actual - $2, updated_at = now()
		WHERE id = $1 AND ahorro_actual >= $2`
	tag, err := r.q.Exec(context.Background(), query, objetivoID, monto)
	if err != nil {
		return false, fmt.Errorf("retirar ahorro: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CrearMovimiento inserta una entrada del historial de aportes/retiros.
func (r *ObjetivoRepo) CrearMovimiento(m *entity.ObjetivoMovimiento) error {
	query := `
		INSERT INTO objetivo_movimientos (id, objetivo_id, monto, es_aporte, descripcion, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ObjetivoID, m.Monto, m.EsAporte, m.Descripcion, m.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento objetivo: %w", err)
	}
	return nil
}

// ListMovimientos historial del objetivo, más reciente primero.
func (r *ObjetivoRepo) ListMovimientos(objetivoID string, limit, offset int) ([]*entity.ObjetivoMovimiento, error) {
	query := `
		SELECT id, objetivo_id, monto, es_aporte, descripcion, fecha
		FROM objetivo_movimientos WHERE objetivo_id = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, objetivoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos objetivo: %w", err)
	}
	defer rows.Close()
	var list []*entity.ObjetivoMovimiento
	for rows.Next() {
		var m entity.ObjetivoMovimiento
		if err := rows.Scan(&m.ID, &m.ObjetivoID, &m.Monto, &m.EsAporte, &m.Descripcion, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento objetivo: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
