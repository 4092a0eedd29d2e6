package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de lectura para el resumen financiero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador read-only del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetTotalesPeriodo suma de ingresos y de gastos aprobados del usuario en el rango dado.
func (r *DashboardRepo) GetTotalesPeriodo(ctx context.Context, userID string, desde, hasta time.Time) (ingresos, gastos decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(monto) FROM ingresos
				WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3), 0),
			COALESCE((SELECT SUM(monto) FROM gastos
				WHERE user_id = $1 AND fecha >= $2 AND fecha <= $3 AND estado_aprobacion_id = $4), 0)`
	err = r.q.QueryRow(ctx, query, userID, desde, hasta, int(entity.AprobacionAprobado)).Scan(&ingresos, &gastos)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("totales periodo: %w", err)
	}
	return ingresos, gastos, nil
}

// GetTransaccionesRecientes últimos movimientos del usuario, ingresos y gastos mezclados.
func (r *DashboardRepo) GetTransaccionesRecientes(ctx context.Context, userID string, limit int) ([]repository.TransaccionReciente, error) {
	query := `
		SELECT tipo, concepto, categoria, monto, fecha FROM (
			SELECT 'ingreso' AS tipo, i.fuente AS concepto,
				COALESCE(c.nombre, '') AS categoria, i.monto, i.fecha
			FROM ingresos i
			LEFT JOIN categorias_movimientos c ON c.id = i.categoria_id
			WHERE i.user_id = $1
			UNION ALL
			SELECT 'gasto' AS tipo, g.concepto,
				COALESCE(c.nombre, '') AS categoria, g.monto, g.fecha
			FROM gastos g
			LEFT JOIN categorias_movimientos c ON c.id = g.categoria_id
			WHERE g.user_id = $1 AND g.estado_aprobacion_id = $2
		) t
		ORDER BY fecha DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, int(entity.AprobacionAprobado), limit)
	if err != nil {
		return nil, fmt.Errorf("transacciones recientes: %w", err)
	}
	defer rows.Close()
	var list []repository.TransaccionReciente
	for rows.Next() {
		var t repository.TransaccionReciente
		if err := rows.Scan(&t.Tipo, &t.Concepto, &t.Categoria, &t.Monto, &t.Fecha); err != nil {
			return nil, fmt.Errorf("scan transaccion: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
