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

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository sobre PostgreSQL (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador de gastos. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

const gastoColumns = `id, user_id, empresa_id, categoria_id, tipo_pago_id, concepto, descripcion,
	monto, fecha, proveedor, ubicacion, notas, es_deducible, estado_aprobacion_id,
	requiere_aprobacion, aprobado_por, fecha_aprobacion, created_at, updated_at`

// Create persiste un nuevo gasto.
func (r *GastoRepo) Create(g *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, user_id, empresa_id, categoria_id, tipo_pago_id, concepto, descripcion,
			monto, fecha, proveedor, ubicacion, notas, es_deducible, estado_aprobacion_id,
			requiere_aprobacion, aprobado_por, fecha_aprobacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.UserID, g.EmpresaID, g.CategoriaID, int(g.TipoPago), g.Concepto, g.Descripcion,
		g.Monto, g.Fecha, g.Proveedor, g.Ubicacion, g.Notas, g.EsDeducible, int(g.EstadoAprobacion),
		g.RequiereAprobacion, g.AprobadoPor, g.FechaAprobacion, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID. (nil, nil) si no existe.
func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + ` FROM gastos WHERE id = $1`
	g, err := scanGasto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto by id: %w", err)
	}
	return g, nil
}

// ListByUser lista gastos del usuario en el período, más reciente primero.
func (r *GastoRepo) ListByUser(userID string, desde, hasta time.Time, limit, offset int) ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + `
		FROM gastos WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha DESC, created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, userID, desde, hasta, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	return collectGastos(rows)
}

// ListByUserEstado lista gastos del usuario filtrados por estado de aprobación.
func (r *GastoRepo) ListByUserEstado(userID string, estado entity.EstadoAprobacion) ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + `
		FROM gastos WHERE user_id = $1 AND estado_aprobacion_id = $2
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, userID, int(estado))
	if err != nil {
		return nil, fmt.Errorf("list gastos por estado: %w", err)
	}
	return collectGastos(rows)
}

// ListPendientesByEmpresa gastos pendientes de los empleados de la empresa, más antiguo primero.
func (r *GastoRepo) ListPendientesByEmpresa(empresaID string) ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + `
		FROM gastos WHERE empresa_id = $1 AND estado_aprobacion_id = $2
		ORDER BY fecha ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, empresaID, int(entity.AprobacionPendiente))
	if err != nil {
		return nil, fmt.Errorf("list gastos pendientes: %w", err)
	}
	return collectGastos(rows)
}

// Update actualiza un gasto.
func (r *GastoRepo) Update(g *entity.Gasto) error {
	query := `
		UPDATE gastos SET categoria_id = $2, tipo_pago_id = $3, concepto = $4, descripcion = $5,
			monto = $6, fecha = $7, proveedor = $8, ubicacion = $9, notas = $10, es_deducible = $11,
			estado_aprobacion_id = $12, requiere_aprobacion = $13, aprobado_por = $14,
			fecha_aprobacion = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.CategoriaID, int(g.TipoPago), g.Concepto, g.Descripcion,
		g.Monto, g.Fecha, g.Proveedor, g.Ubicacion, g.Notas, g.EsDeducible,
		int(g.EstadoAprobacion), g.RequiereAprobacion, g.AprobadoPor,
		g.FechaAprobacion, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *GastoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	return nil
}

// Aprobar ejecuta la aprobación como un solo UPDATE condicional: solo afecta
// la fila si sigue Pendiente y pertenece a la empresa. Sin lectura previa no
// hay carrera entre dos decisiones concurrentes; gana la primera en ejecutar.
func (r *GastoRepo) Aprobar(gastoID, empresaID, aprobadorID, comentario string, ahora time.Time) (bool, error) {
	query := `
		UPDATE gastos
		SET estado_aprobacion_id = $1, aprobado_por = $2, fecha_aprobacion = $3,
			notas = CASE WHEN $4 = '' THEN notas ELSE notas || E'\n[APROBADO] ' || $4 END,
			updated_at = $3
		WHERE id = $5 AND empresa_id = $6 AND estado_aprobacion_id = $7`
	tag, err := r.q.Exec(context.Background(), query,
		int(entity.AprobacionAprobado), aprobadorID, ahora, comentario,
		gastoID, empresaID, int(entity.AprobacionPendiente),
	)
	if err != nil {
		return false, fmt.Errorf("aprobar gasto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Rechazar análogo a Aprobar con estado Rechazado. No registra aprobador.
func (r *GastoRepo) Rechazar(gastoID, empresaID, aprobadorID, motivo string, ahora time.Time) (bool, error) {
	query := `
		UPDATE gastos
		SET estado_aprobacion_id = $1, aprobado_por = $2, fecha_aprobacion = $3,
			notas = CASE WHEN $4 = '' THEN notas ELSE notas || E'\n[RECHAZADO] ' || $4 END,
			updated_at = $3
		WHERE id = $5 AND empresa_id = $6 AND estado_aprobacion_id = $7`
	tag, err := r.q.Exec(context.Background(), query,
		int(entity.AprobacionRechazado), aprobadorID, ahora, motivo,
		gastoID, empresaID, int(entity.AprobacionPendiente),
	)
	if err != nil {
		return false, fmt.Errorf("rechazar gasto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// TotalPorPeriodo suma de gastos aprobados del usuario en el período.
func (r *GastoRepo) TotalPorPeriodo(userID string, desde, hasta time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(monto), 0)
		FROM gastos
		WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3 AND estado_aprobacion_id = $4`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, desde, hasta, int(entity.AprobacionAprobado)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total gastos por periodo: %w", err)
	}
	return total, nil
}

// ResumenPorCategoria totales de gastos aprobados agrupados por categoría.
func (r *GastoRepo) ResumenPorCategoria(userID string, desde, hasta time.Time) ([]repository.TotalCategoria, error) {
	query := `
		SELECT g.categoria_id, c.nombre, COALESCE(SUM(g.monto), 0), COUNT(*)
		FROM gastos g
		JOIN categorias_movimientos c ON c.id = g.categoria_id
		WHERE g.user_id = $1 AND g.fecha >= $2 AND g.fecha <= $3 AND g.estado_aprobacion_id = $4
		GROUP BY g.categoria_id, c.nombre
		ORDER BY SUM(g.monto) DESC`
	rows, err := r.q.Query(context.Background(), query, userID, desde, hasta, int(entity.AprobacionAprobado))
	if err != nil {
		return nil, fmt.Errorf("resumen por categoria: %w", err)
	}
	defer rows.Close()
	var list []repository.TotalCategoria
	for rows.Next() {
		var t repository.TotalCategoria
		if err := rows.Scan(&t.CategoriaID, &t.Nombre, &t.Total, &t.Conteo); err != nil {
			return nil, fmt.Errorf("scan resumen categoria: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanGasto(row pgx.Row) (*entity.Gasto, error) {
	var g entity.Gasto
	var tipoPagoID, estadoID int
	err := row.Scan(
		&g.ID, &g.UserID, &g.EmpresaID, &g.CategoriaID, &tipoPagoID, &g.Concepto, &g.Descripcion,
		&g.Monto, &g.Fecha, &g.Proveedor, &g.Ubicacion, &g.Notas, &g.EsDeducible, &estadoID,
		&g.RequiereAprobacion, &g.AprobadoPor, &g.FechaAprobacion, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.TipoPago = entity.TipoPago(tipoPagoID)
	g.EstadoAprobacion = entity.EstadoAprobacion(estadoID)
	return &g, nil
}

func collectGastos(rows pgx.Rows) ([]*entity.Gasto, error) {
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		g, err := scanGasto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
