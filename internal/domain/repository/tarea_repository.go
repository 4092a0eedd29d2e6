package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// TareaRepository define el puerto de persistencia para tareas asignadas,
// sus comentarios y su historial de estados.
type TareaRepository interface {
	Create(tarea *entity.TareaAsignada) error
	GetByID(id string) (*entity.TareaAsignada, error)
	// ListByEmpleado tareas asignadas al empleado; estado nil devuelve todas.
	ListByEmpleado(empleadoID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error)
	ListByEmpresa(empresaID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error)
	Update(tarea *entity.TareaAsignada) error

	CrearComentario(c *entity.TareaComentario) error
	// ListComentarios comentarios de la tarea; incluirInternos=false filtra
	// los marcados como internos (vista de empleado).
	ListComentarios(tareaID string, incluirInternos bool) ([]*entity.TareaComentario, error)

	CrearHistorial(h *entity.TareaHistorial) error
	ListHistorial(tareaID string) ([]*entity.TareaHistorial, error)
}
