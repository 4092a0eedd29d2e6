package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo consultas de lectura transversales para el panel del
// administrador. Read-only.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador read-only del panel admin.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// GetEstadisticasGlobales totales de la plataforma completa.
func (r *AdminRepo) GetEstadisticasGlobales(ctx context.Context) (*repository.EstadisticasGlobales, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			COALESCE((SELECT SUM(monto) FROM ingresos), 0),
			COALESCE((SELECT SUM(monto) FROM gastos WHERE estado_aprobacion_id = $1), 0)`
	var stats repository.EstadisticasGlobales
	err := r.q.QueryRow(ctx, query, int(entity.AprobacionAprobado)).
		Scan(&stats.TotalUsuarios, &stats.TotalIngresos, &stats.TotalGastos)
	if err != nil {
		return nil, fmt.Errorf("estadisticas globales: %w", err)
	}
	return &stats, nil
}

// GetResumenPlataforma corte del mes: altas nuevas, totales y cuentas
// inhabilitadas.
func (r *AdminRepo) GetResumenPlataforma(ctx context.Context, mes, anio int) (*repository.ResumenPlataforma, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users
				WHERE EXTRACT(MONTH FROM created_at) = $1 AND EXTRACT(YEAR FROM created_at) = $2),
			COALESCE((SELECT SUM(monto) FROM ingresos), 0),
			COALESCE((SELECT SUM(monto) FROM gastos WHERE estado_aprobacion_id = $3), 0),
			(SELECT COUNT(*) FROM users WHERE NOT is_active)`
	var res repository.ResumenPlataforma
	err := r.q.QueryRow(ctx, query, mes, anio, int(entity.AprobacionAprobado)).
		Scan(&res.NuevosUsuariosMes, &res.TotalIngresos, &res.TotalGastos, &res.CuentasInhabilitadas)
	if err != nil {
		return nil, fmt.Errorf("resumen plataforma: %w", err)
	}
	return &res, nil
}

// GetBalanceUsuario suma histórica de ingresos y gastos del usuario.
func (r *AdminRepo) GetBalanceUsuario(ctx context.Context, userID string) (ingresos, gastos decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(monto) FROM ingresos WHERE user_id = $1), 0),
			COALESCE((SELECT SUM(monto) FROM gastos WHERE user_id = $1), 0)`
	err = r.q.QueryRow(ctx, query, userID).Scan(&ingresos, &gastos)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("balance usuario: %w", err)
	}
	return ingresos, gastos, nil
}

// GetActividadEmpresa conteos de empleados, proyectos y tareas completadas.
func (r *AdminRepo) GetActividadEmpresa(ctx context.Context, empresaID string) (*repository.ActividadEmpresa, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users
				WHERE created_by_empresa_id = $1 AND rol_id = $2),
			(SELECT COUNT(*) FROM proyectos WHERE empresa_id = $1),
			(SELECT COUNT(*) FROM tareas_asignadas
				WHERE empresa_id = $1 AND estado_id = $3)`
	var act repository.ActividadEmpresa
	err := r.q.QueryRow(ctx, query, empresaID, int(entity.RolEmpleado), int(entity.TareaCompletada)).
		Scan(&act.Empleados, &act.Proyectos, &act.TareasCompletadas)
	if err != nil {
		return nil, fmt.Errorf("actividad empresa: %w", err)
	}
	return &act, nil
}

// ListUsuariosPorRol página de cuentas del rol con búsqueda y filtro de estado.
func (r *AdminRepo) ListUsuariosPorRol(
	ctx context.Context,
	rol entity.Rol,
	search string,
	activo *bool,
	limit, offset int,
) ([]*entity.User, int, error) {
	where := `WHERE rol_id = $1`
	args := []any{int(rol)}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where += fmt.Sprintf(
			` AND (username ILIKE $%d OR email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)`,
			n, n, n, n,
		)
	}
	if activo != nil {
		args = append(args, *activo)
		where += fmt.Sprintf(` AND is_active = $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count usuarios por rol: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT `+userColumns+` FROM users %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list usuarios por rol: %w", err)
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
			return nil, 0, fmt.Errorf("scan usuario: %w", err)
		}
		u.Rol = entity.Rol(rolID)
		list = append(list, &u)
	}
	return list, total, rows.Err()
}
