package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.TareaRepository = (*TareaRepo)(nil)

// TareaRepo implementación de TareaRepository sobre PostgreSQL (usable con pool o tx).
type TareaRepo struct {
	q Querier
}

// NewTareaRepository construye el adaptador de tareas. Pasar pool o tx (Querier).
func NewTareaRepository(q Querier) *TareaRepo {
	return &TareaRepo{q: q}
}

const tareaColumns = `id, empresa_id, empleado_id, titulo, descripcion, prioridad_id, estado_id,
	fecha_asignacion, fecha_limite, fecha_completada, notas_empresa, notas_empleado,
	created_at, updated_at`

// Create persiste una nueva tarea asignada.
func (r *TareaRepo) Create(t *entity.TareaAsignada) error {
	query := `
		INSERT INTO tareas_asignadas (id, empresa_id, empleado_id, titulo, descripcion,
			prioridad_id, estado_id, fecha_asignacion, fecha_limite, fecha_completada,
			notas_empresa, notas_empleado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.EmpresaID, t.EmpleadoID, t.Titulo, t.Descripcion,
		int(t.Prioridad), int(t.Estado), t.FechaAsignacion, t.FechaLimite, t.FechaCompletada,
		t.NotasEmpresa, t.NotasEmpleado, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tarea: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. (nil, nil) si no existe.
func (r *TareaRepo) GetByID(id string) (*entity.TareaAsignada, error) {
	query := `SELECT ` + tareaColumns + ` FROM tareas_asignadas WHERE id = $1`
	t, err := scanTarea(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarea by id: %w", err)
	}
	return t, nil
}

// ListByEmpleado tareas del empleado; estado nil devuelve todas, límite más próximo primero.
func (r *TareaRepo) ListByEmpleado(empleadoID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error) {
	return r.list(`empleado_id`, empleadoID, estado)
}

// ListByEmpresa tareas creadas por la empresa; estado nil devuelve todas.
func (r *TareaRepo) ListByEmpresa(empresaID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error) {
	return r.list(`empresa_id`, empresaID, estado)
}

func (r *TareaRepo) list(col, id string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error) {
	query := `SELECT ` + tareaColumns + ` FROM tareas_asignadas WHERE ` + col + ` = $1`
	args := []any{id}
	if estado != nil {
		query += ` AND estado_id = $2`
		args = append(args, int(*estado))
	}
	query += ` ORDER BY fecha_limite ASC NULLS LAST, fecha_asignacion DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tareas: %w", err)
	}
	defer rows.Close()
	var list []*entity.TareaAsignada
	for rows.Next() {
		t, err := scanTarea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tarea: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea.
func (r *TareaRepo) Update(t *entity.TareaAsignada) error {
	query := `
		UPDATE tareas_asignadas SET titulo = $2, descripcion = $3, prioridad_id = $4,
			estado_id = $5, fecha_limite = $6, fecha_completada = $7,
			notas_empresa = $8, notas_empleado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Titulo, t.Descripcion, int(t.Prioridad),
		int(t.Estado), t.FechaLimite, t.FechaCompletada,
		t.NotasEmpresa, t.NotasEmpleado, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tarea: %w", err)
	}
	return nil
}

// CrearComentario inserta un comentario de tarea.
func (r *TareaRepo) CrearComentario(c *entity.TareaComentario) error {
	query := `
		INSERT INTO tarea_comentarios (id, tarea_id, autor_id, comentario, es_interno, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TareaID, c.AutorID, c.Comentario, c.EsInterno, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comentario: %w", err)
	}
	return nil
}

// ListComentarios comentarios de la tarea en orden cronológico.
// incluirInternos=false filtra los internos (vista de empleado).
func (r *TareaRepo) ListComentarios(tareaID string, incluirInternos bool) ([]*entity.TareaComentario, error) {
	query := `
		SELECT id, tarea_id, autor_id, comentario, es_interno, created_at
		FROM tarea_comentarios WHERE tarea_id = $1`
	if !incluirInternos {
		query += ` AND es_interno = false`
	}
	query += ` ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, tareaID)
	if err != nil {
		return nil, fmt.Errorf("list comentarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.TareaComentario
	for rows.Next() {
		var c entity.TareaComentario
		if err := rows.Scan(&c.ID, &c.TareaID, &c.AutorID, &c.Comentario, &c.EsInterno, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comentario: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CrearHistorial inserta un registro de cambio de estado.
func (r *TareaRepo) CrearHistorial(h *entity.TareaHistorial) error {
	query := `
		INSERT INTO tarea_historial (id, tarea_id, estado_anterior_id, estado_nuevo_id, motivo, cambiado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.TareaID, int(h.EstadoAnterior), int(h.EstadoNuevo), h.Motivo, h.CambiadoPor, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListHistorial historial de estados de la tarea en orden cronológico.
func (r *TareaRepo) ListHistorial(tareaID string) ([]*entity.TareaHistorial, error) {
	query := `
		SELECT id, tarea_id, estado_anterior_id, estado_nuevo_id, motivo, cambiado_por, created_at
		FROM tarea_historial WHERE tarea_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, tareaID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.TareaHistorial
	for rows.Next() {
		var h entity.TareaHistorial
		var anteriorID, nuevoID int
		if err := rows.Scan(&h.ID, &h.TareaID, &anteriorID, &nuevoID, &h.Motivo, &h.CambiadoPor, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		h.EstadoAnterior = entity.EstadoTarea(anteriorID)
		h.EstadoNuevo = entity.EstadoTarea(nuevoID)
		list = append(list, &h)
	}
	return list, rows.Err()
}

func scanTarea(row pgx.Row) (*entity.TareaAsignada, error) {
	var t entity.TareaAsignada
	var prioridadID, estadoID int
	err := row.Scan(
		&t.ID, &t.EmpresaID, &t.EmpleadoID, &t.Titulo, &t.Descripcion, &prioridadID, &estadoID,
		&t.FechaAsignacion, &t.FechaLimite, &t.FechaCompletada, &t.NotasEmpresa, &t.NotasEmpleado,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Prioridad = entity.Prioridad(prioridadID)
	t.Estado = entity.EstadoTarea(estadoID)
	return &t, nil
}
