package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación de ProyectoRepository sobre PostgreSQL (usable con pool o tx).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador de proyectos. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

const proyectoColumns = `id, empresa_id, titulo, descripcion, estado_id, fecha_inicio,
	fecha_limite, fecha_completado, progreso_porcentaje, presupuesto, monto_gastado,
	created_at, updated_at`

// Create persiste un nuevo proyecto.
func (r *ProyectoRepo) Create(p *entity.Proyecto) error {
	query := `
		INSERT INTO proyectos (id, empresa_id, titulo, descripcion, estado_id, fecha_inicio,
			fecha_limite, fecha_completado, progreso_porcentaje, presupuesto, monto_gastado,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EmpresaID, p.Titulo, p.Descripcion, int(p.Estado), p.FechaInicio,
		p.FechaLimite, p.FechaCompletado, p.ProgresoPorcentaje, p.Presupuesto, p.MontoGastado,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID. (nil, nil) si no existe.
func (r *ProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE id = $1`
	p, err := scanProyecto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto by id: %w", err)
	}
	return p, nil
}

// ListByEmpresa lista los proyectos de la empresa, más reciente primero.
func (r *ProyectoRepo) ListByEmpresa(empresaID string) ([]*entity.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + `
		FROM proyectos WHERE empresa_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto (incluye progreso, estado y monto gastado).
func (r *ProyectoRepo) Update(p *entity.Proyecto) error {
	query := `
		UPDATE proyectos SET titulo = $2, descripcion = $3, estado_id = $4, fecha_inicio = $5,
			fecha_limite = $6, fecha_completado = $7, progreso_porcentaje = $8,
			presupuesto = $9, monto_gastado = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Titulo, p.Descripcion, int(p.Estado), p.FechaInicio,
		p.FechaLimite, p.FechaCompletado, p.ProgresoPorcentaje,
		p.Presupuesto, p.MontoGastado, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proyecto: %w", err)
	}
	return nil
}

// Delete elimina un proyecto con sus metas y gastos (FK ON DELETE CASCADE).
func (r *ProyectoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proyectos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proyecto: %w", err)
	}
	return nil
}

// CrearMeta inserta un ítem del checklist.
func (r *ProyectoRepo) CrearMeta(m *entity.ProyectoMeta) error {
	query := `
		INSERT INTO proyecto_metas (id, proyecto_id, titulo, completado, orden, fecha_completado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProyectoID, m.Titulo, m.Completado, m.Orden, m.FechaCompletado, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}

// GetMeta obtiene una meta por ID. (nil, nil) si no existe.
func (r *ProyectoRepo) GetMeta(metaID string) (*entity.ProyectoMeta, error) {
	query := `
		SELECT id, proyecto_id, titulo, completado, orden, fecha_completado, created_at
		FROM proyecto_metas WHERE id = $1`
	var m entity.ProyectoMeta
	err := r.q.QueryRow(context.Background(), query, metaID).Scan(
		&m.ID, &m.ProyectoID, &m.Titulo, &m.Completado, &m.Orden, &m.FechaCompletado, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meta by id: %w", err)
	}
	return &m, nil
}

// UpdateMeta actualiza una meta.
func (r *ProyectoRepo) UpdateMeta(m *entity.ProyectoMeta) error {
	query := `
		UPDATE proyecto_metas SET titulo = $2, completado = $3, orden = $4, fecha_completado = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Titulo, m.Completado, m.Orden, m.FechaCompletado,
	)
	if err != nil {
		return fmt.Errorf("update meta: %w", err)
	}
	return nil
}

// ListMetas metas del proyecto ordenadas por Orden ascendente.
func (r *ProyectoRepo) ListMetas(proyectoID string) ([]*entity.ProyectoMeta, error) {
	query := `
		SELECT id, proyecto_id, titulo, completado, orden, fecha_completado, created_at
		FROM proyecto_metas WHERE proyecto_id = $1 ORDER BY orden ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, proyectoID)
	if err != nil {
		return nil, fmt.Errorf("list metas: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProyectoMeta
	for rows.Next() {
		var m entity.ProyectoMeta
		if err := rows.Scan(&m.ID, &m.ProyectoID, &m.Titulo, &m.Completado, &m.Orden, &m.FechaCompletado, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meta: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CrearGasto inserta un gasto de proyecto.
func (r *ProyectoRepo) CrearGasto(g *entity.ProyectoGasto) error {
	query := `
		INSERT INTO proyecto_gastos (id, proyecto_id, concepto, monto, fecha, registrado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.ProyectoID, g.Concepto, g.Monto, g.Fecha, g.RegistradoPor, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto proyecto: %w", err)
	}
	return nil
}

// ListGastos gastos del proyecto, más reciente primero.
func (r *ProyectoRepo) ListGastos(proyectoID string) ([]*entity.ProyectoGasto, error) {
	query := `
		SELECT id, proyecto_id, concepto, monto, fecha, registrado_por, created_at
		FROM proyecto_gastos WHERE proyecto_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, proyectoID)
	if err != nil {
		return nil, fmt.Errorf("list gastos proyecto: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProyectoGasto
	for rows.Next() {
		var g entity.ProyectoGasto
		if err := rows.Scan(&g.ID, &g.ProyectoID, &g.Concepto, &g.Monto, &g.Fecha, &g.RegistradoPor, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto proyecto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Estadisticas agregado de proyectos de la empresa: total, por estado y progreso promedio.
func (r *ProyectoRepo) Estadisticas(empresaID string) (*repository.EstadisticasProyectos, error) {
	query := `
		SELECT estado_id, COUNT(*), COALESCE(AVG(progreso_porcentaje), 0)
		FROM proyectos WHERE empresa_id = $1 GROUP BY estado_id`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("estadisticas proyectos: %w", err)
	}
	defer rows.Close()

	stats := &repository.EstadisticasProyectos{PorEstado: make(map[string]int)}
	var sumaProgreso float64
	for rows.Next() {
		var estadoID, conteo int
		var progresoPromedio float64
		if err := rows.Scan(&estadoID, &conteo, &progresoPromedio); err != nil {
			return nil, fmt.Errorf("scan estadisticas: %w", err)
		}
		stats.Total += conteo
		stats.PorEstado[entity.EstadoProyecto(estadoID).Codigo()] = conteo
		sumaProgreso += progresoPromedio * float64(conteo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if stats.Total > 0 {
		stats.ProgresoPromedio = sumaProgreso / float64(stats.Total)
	}
	return stats, nil
}

func scanProyecto(row pgx.Row) (*entity.Proyecto, error) {
	var p entity.Proyecto
	var estadoID int
	err := row.Scan(
		&p.ID, &p.EmpresaID, &p.Titulo, &p.Descripcion, &estadoID, &p.FechaInicio,
		&p.FechaLimite, &p.FechaCompletado, &p.ProgresoPorcentaje, &p.Presupuesto, &p.MontoGastado,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Estado = entity.EstadoProyecto(estadoID)
	return &p, nil
}
