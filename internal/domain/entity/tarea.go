package entity

import "time"

// EstadoTarea estado del ciclo de vida de una tarea asignada.
type EstadoTarea int

const (
	TareaPendiente  EstadoTarea = 1
	TareaEnProgreso EstadoTarea = 2
	TareaCompletada EstadoTarea = 3
	TareaCancelada  EstadoTarea = 4
)

func (e EstadoTarea) Valido() bool { return e >= TareaPendiente && e <= TareaCancelada }

// EsTerminal indica si desde este estado ya no hay transiciones.
func (e EstadoTarea) EsTerminal() bool {
	return e == TareaCompletada || e == TareaCancelada
}

// Codigo devuelve el código textual del estado.
func (e EstadoTarea) Codigo() string {
	switch e {
	case TareaPendiente:
		return "pendiente"
	case TareaEnProgreso:
		return "en_progreso"
	case TareaCompletada:
		return "completada"
	case TareaCancelada:
		return "cancelada"
	default:
		return ""
	}
}

// EstadoTareaDesdeCodigo convierte el código textual a EstadoTarea.
func EstadoTareaDesdeCodigo(codigo string) (EstadoTarea, bool) {
	switch codigo {
	case "pendiente":
		return TareaPendiente, true
	case "en_progreso":
		return TareaEnProgreso, true
	case "completada":
		return TareaCompletada, true
	case "cancelada":
		return TareaCancelada, true
	default:
		return 0, false
	}
}

// TareaAsignada tarea creada por una empresa y asignada a uno de sus empleados.
type TareaAsignada struct {
	ID              string
	EmpresaID       string
	EmpleadoID      string
	Titulo          string
	Descripcion     string
	Prioridad       Prioridad
	Estado          EstadoTarea
	FechaAsignacion time.Time
	FechaLimite     *time.Time
	FechaCompletada *time.Time
	NotasEmpresa    string
	NotasEmpleado   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TareaComentario comentario sobre una tarea. Los internos (EsInterno) solo
// son visibles para la empresa.
type TareaComentario struct {
	ID         string
	TareaID    string
	AutorID    string
	Comentario string
	EsInterno  bool
	CreatedAt  time.Time
}

// TareaHistorial registro de cada cambio de estado de una tarea.
type TareaHistorial struct {
	ID             string
	TareaID        string
	EstadoAnterior EstadoTarea
	EstadoNuevo    EstadoTarea
	Motivo         string
	CambiadoPor    string
	CreatedAt      time.Time
}
