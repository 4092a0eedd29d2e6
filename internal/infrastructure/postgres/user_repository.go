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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, phone,
	rol_id, created_by_empresa_id, is_active, is_verified, last_login, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, phone,
			rol_id, created_by_empresa_id, is_active, is_verified, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone,
		int(user.Rol), user.CreatedByEmpresaID, user.IsActive, user.IsVerified, user.LastLogin,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// GetByUsername obtiene un usuario por username. (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username), "get user by username")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var rolID int
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
		&rolID, &u.CreatedByEmpresaID, &u.IsActive, &u.IsVerified, &u.LastLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Rol = entity.Rol(rolID)
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, first_name = $4, last_name = $5,
			phone = $6, is_active = $7, is_verified = $8, last_login = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.IsActive, user.IsVerified, user.LastLogin, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListEmpleados lista los empleados dados de alta por la empresa, con paginación.
func (r *UserRepo) ListEmpleados(empresaID string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE created_by_empresa_id = $1 AND rol_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, int(entity.RolEmpleado), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var rolID int
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
			&rolID, &u.CreatedByEmpresaID, &u.IsActive, &u.IsVerified, &u.LastLogin,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		u.Rol = entity.Rol(rolID)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// DesvincularEmpleado quita el vínculo con la empresa sin borrar la cuenta.
// El UPDATE condicional garantiza que solo se desvincula a un empleado que
// pertenece a esa empresa; ok=false si no afectó filas.
func (r *UserRepo) DesvincularEmpleado(empresaID, empleadoID string) (bool, error) {
	query := `
		UPDATE users SET created_by_empresa_id = NULL, updated_at = NOW()
		WHERE id = $1 AND created_by_empresa_id = $2 AND rol_id = $3`
	tag, err := r.q.Exec(context.Background(), query, empleadoID, empresaID, int(entity.RolEmpleado))
	if err != nil {
		return false, fmt.Errorf("desvincular empleado: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
