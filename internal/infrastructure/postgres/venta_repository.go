package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaColumns = `id, empresa_id, empleado_id, producto_id, cantidad, precio_unitario,
	monto_total, fecha, notas, created_at`

// Create persiste una nueva venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, empresa_id, empleado_id, producto_id, cantidad, precio_unitario,
			monto_total, fecha, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.EmpresaID, v.EmpleadoID, v.ProductoID, v.Cantidad, v.PrecioUnitario,
		v.MontoTotal, v.Fecha, v.Notas, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// ListByEmpleado ventas del empleado en el período, más reciente primero.
func (r *VentaRepo) ListByEmpleado(empleadoID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	return r.list(`empleado_id`, empleadoID, desde, hasta)
}

// ListByEmpresa ventas de la empresa en el período, más reciente primero.
func (r *VentaRepo) ListByEmpresa(empresaID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	return r.list(`empresa_id`, empresaID, desde, hasta)
}

func (r *VentaRepo) list(col, id string, desde, hasta time.Time) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas
		WHERE ` + col + ` = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, id, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	return collectVentas(rows)
}

// ResumenEmpleado agregado de ventas del empleado en el período.
func (r *VentaRepo) ResumenEmpleado(empleadoID string, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	return r.resumen(`empleado_id`, empleadoID, desde, hasta)
}

// ResumenEmpresa agregado de ventas de la empresa en el período.
func (r *VentaRepo) ResumenEmpresa(empresaID string, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	return r.resumen(`empresa_id`, empresaID, desde, hasta)
}

func (r *VentaRepo) resumen(col, id string, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(cantidad), 0), COALESCE(SUM(monto_total), 0)
		FROM ventas WHERE ` + col + ` = $1 AND fecha >= $2 AND fecha <= $3`
	var res repository.ResumenVentas
	err := r.q.QueryRow(context.Background(), query, id, desde, hasta).Scan(
		&res.Conteo, &res.UnidadesTotal, &res.MontoTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen ventas: %w", err)
	}
	if res.Conteo > 0 {
		res.TicketPromedio = res.MontoTotal.Div(decimal.NewFromInt(int64(res.Conteo))).Round(2)
	} else {
		res.TicketPromedio = decimal.Zero
	}
	return &res, nil
}

func collectVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.EmpresaID, &v.EmpleadoID, &v.ProductoID, &v.Cantidad, &v.PrecioUnitario,
			&v.MontoTotal, &v.Fecha, &v.Notas, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
