package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, empresa_id, nombre, descripcion, sku, precio_venta, stock, activo,
	created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, empresa_id, nombre, descripcion, sku, precio_venta, stock,
			activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EmpresaID, p.Nombre, p.Descripcion, p.SKU, p.PrecioVenta, p.Stock,
		p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.Nombre, &p.Descripcion, &p.SKU, &p.PrecioVenta, &p.Stock,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by id: %w", err)
	}
	return &p, nil
}

// ListByEmpresa lista los productos activos de la empresa.
func (r *ProductoRepo) ListByEmpresa(empresaID string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + `
		FROM productos WHERE empresa_id = $1 AND activo = true ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.EmpresaID, &p.Nombre, &p.Descripcion, &p.SKU, &p.PrecioVenta, &p.Stock,
			&p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, sku = $4, precio_venta = $5,
			stock = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.SKU, p.PrecioVenta, p.Stock, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete desactiva un producto (soft delete: conserva ventas históricas).
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// DescontarStock resta cantidad solo si alcanza (UPDATE condicional).
// El stock nunca puede quedar negativo, ni con ventas concurrentes.
func (r *ProductoRepo) DescontarStock(productoID string, cantidad int) (bool, error) {
	query := `
		UPDATE productos SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`
	tag, err := r.q.Exec(context.Background(), query, productoID, cantidad)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
