package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository sobre PostgreSQL.
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador de facturas.
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `id, user_id, nombre, tipo_factura_id, monto, fecha_vencimiento,
	estado_id, ultimo_pago, es_recurrente, frecuencia_dias, notas, created_at, updated_at`

// Create persiste una nueva factura.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (id, user_id, nombre, tipo_factura_id, monto, fecha_vencimiento,
			estado_id, ultimo_pago, es_recurrente, frecuencia_dias, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.UserID, f.Nombre, int(f.TipoFactura), f.Monto, f.FechaVencimiento,
		int(f.Estado), f.UltimoPago, f.EsRecurrente, f.FrecuenciaDias, f.Notas, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. (nil, nil) si no existe.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE id = $1`
	f, err := scanFactura(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura by id: %w", err)
	}
	return f, nil
}

// ListByUser lista por usuario; estado nil devuelve todas, próximas a vencer primero.
func (r *FacturaRepo) ListByUser(userID string, estado *entity.EstadoFactura) ([]*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE user_id = $1`
	args := []any{userID}
	if estado != nil {
		query += ` AND estado_id = $2`
		args = append(args, int(*estado))
	}
	query += ` ORDER BY fecha_vencimiento ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update actualiza una factura.
func (r *FacturaRepo) Update(f *entity.Factura) error {
	query := `
		UPDATE facturas SET nombre = $2, tipo_factura_id = $3, monto = $4, fecha_vencimiento = $5,
			estado_id = $6, ultimo_pago = $7, es_recurrente = $8, frecuencia_dias = $9,
			notas = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nombre, int(f.TipoFactura), f.Monto, f.FechaVencimiento,
		int(f.Estado), f.UltimoPago, f.EsRecurrente, f.FrecuenciaDias,
		f.Notas, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *FacturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var tipoID, estadoID int
	err := row.Scan(
		&f.ID, &f.UserID, &f.Nombre, &tipoID, &f.Monto, &f.FechaVencimiento,
		&estadoID, &f.UltimoPago, &f.EsRecurrente, &f.FrecuenciaDias, &f.Notas,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.TipoFactura = entity.TipoFactura(tipoID)
	f.Estado = entity.EstadoFactura(estadoID)
	return &f, nil
}
