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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(cat *entity.CategoriaMovimiento) error {
	query := `
		INSERT INTO categorias_movimientos (id, user_id, nombre, tipo_id, icono, color, activa, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cat.ID, cat.UserID, cat.Nombre, int(cat.Tipo), cat.Icono, cat.Color, cat.Activa, cat.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoriaRepo) GetByID(id string) (*entity.CategoriaMovimiento, error) {
	query := `
		SELECT id, user_id, nombre, tipo_id, icono, color, activa, created_at
		FROM categorias_movimientos WHERE id = $1`
	var c entity.CategoriaMovimiento
	var tipoID int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.Nombre, &tipoID, &c.Icono, &c.Color, &c.Activa, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria by id: %w", err)
	}
	c.Tipo = entity.TipoMovimiento(tipoID)
	return &c, nil
}

// ListByUser lista las categorías activas del usuario más las globales (user_id NULL).
func (r *CategoriaRepo) ListByUser(userID string) ([]*entity.CategoriaMovimiento, error) {
	query := `
		SELECT id, user_id, nombre, tipo_id, icono, color, activa, created_at
		FROM categorias_movimientos
		WHERE (user_id = $1 OR user_id IS NULL) AND activa = true
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaMovimiento
	for rows.Next() {
		var c entity.CategoriaMovimiento
		var tipoID int
		if err := rows.Scan(&c.ID, &c.UserID, &c.Nombre, &tipoID, &c.Icono, &c.Color, &c.Activa, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		c.Tipo = entity.TipoMovimiento(tipoID)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete desactiva una categoría propia del usuario (soft delete; las globales no se tocan).
func (r *CategoriaRepo) Delete(id, userID string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE categorias_movimientos SET activa = false WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
