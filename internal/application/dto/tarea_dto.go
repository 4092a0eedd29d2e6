package dto

import "time"

// CrearTareaRequest entrada para que una empresa asigne una tarea a un empleado.
type CrearTareaRequest struct {
	EmpleadoID   string     `json:"empleado_id" validate:"required,uuid"`
	Titulo       string     `json:"titulo" validate:"required,min=1,max=200"`
	Descripcion  string     `json:"descripcion" validate:"omitempty,max=2000"`
	PrioridadID  int        `json:"prioridad_id" validate:"required,min=1,max=4"`
	FechaLimite  *time.Time `json:"fecha_limite"`
	NotasEmpresa string     `json:"notas_empresa" validate:"omitempty,max=1000"`
}

// CambiarEstadoTareaRequest entrada para cambiar el estado de una tarea por código.
type CambiarEstadoTareaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_progreso completada cancelada"`
	Motivo string `json:"motivo" validate:"omitempty,max=500"`
}

// ComentarTareaRequest entrada para agregar un comentario a una tarea.
type ComentarTareaRequest struct {
	Comentario string `json:"comentario" validate:"required,min=1,max=1000"`
	EsInterno  bool   `json:"es_interno"`
}

// TareaResponse salida de una tarea asignada.
type TareaResponse struct {
	ID              string     `json:"id"`
	EmpresaID       string     `json:"empresa_id"`
	EmpleadoID      string     `json:"empleado_id"`
	Titulo          string     `json:"titulo"`
	Descripcion     string     `json:"descripcion,omitempty"`
	PrioridadID     int        `json:"prioridad_id"`
	Estado          string     `json:"estado"`
	FechaAsignacion time.Time  `json:"fecha_asignacion"`
	FechaLimite     *time.Time `json:"fecha_limite,omitempty"`
	FechaCompletada *time.Time `json:"fecha_completada,omitempty"`
	NotasEmpresa    string     `json:"notas_empresa,omitempty"`
	NotasEmpleado   string     `json:"notas_empleado,omitempty"`
}

// ComentarioTareaResponse salida de un comentario.
type ComentarioTareaResponse struct {
	ID         string    `json:"id"`
	AutorID    string    `json:"autor_id"`
	Comentario string    `json:"comentario"`
	EsInterno  bool      `json:"es_interno"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistorialTareaResponse salida de un cambio de estado.
type HistorialTareaResponse struct {
	ID             string    `json:"id"`
	EstadoAnterior string    `json:"estado_anterior"`
	EstadoNuevo    string    `json:"estado_nuevo"`
	Motivo         string    `json:"motivo,omitempty"`
	CambiadoPor    string    `json:"cambiado_por"`
	CreatedAt      time.Time `json:"created_at"`
}

// EstadisticasTareasResponse conteo de tareas por estado.
type EstadisticasTareasResponse struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	EnProgreso  int `json:"en_progreso"`
	Completadas int `json:"completadas"`
	Canceladas  int `json:"canceladas"`
}
