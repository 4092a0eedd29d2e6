package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// TareaUseCase casos de uso de tareas asignadas: la empresa asigna, el
// empleado avanza el estado y cada transición queda en el historial dentro
// de la misma transacción.
type TareaUseCase struct {
	tareaRepo repository.TareaRepository
	userRepo  repository.UserRepository
	tx        TareaTxRunner
}

// NewTareaUseCase construye el caso de uso de tareas.
func NewTareaUseCase(tareaRepo repository.TareaRepository, userRepo repository.UserRepository, tx TareaTxRunner) *TareaUseCase {
	return &TareaUseCase{tareaRepo: tareaRepo, userRepo: userRepo, tx: tx}
}

// CrearTarea asigna una tarea a un empleado de la empresa. El empleado debe
// existir, estar activo y pertenecer a la empresa.
func (uc *TareaUseCase) CrearTarea(empresaID string, in dto.CrearTareaRequest) (*dto.TareaResponse, error) {
	prioridad := entity.Prioridad(in.PrioridadID)
	if !prioridad.Valido() {
		return nil, domain.ErrInvalidInput
	}
	empleado, err := uc.userRepo.GetByID(in.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrUserNotFound
	}
	if !empleado.EsEmpleadoDe(empresaID) || !empleado.IsActive {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	tarea := &entity.TareaAsignada{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		EmpleadoID:      in.EmpleadoID,
		Titulo:          in.Titulo,
		Descripcion:     in.Descripcion,
		Prioridad:       prioridad,
		Estado:          entity.TareaPendiente,
		FechaAsignacion: now,
		FechaLimite:     in.FechaLimite,
		NotasEmpresa:    in.NotasEmpresa,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.tareaRepo.Create(tarea); err != nil {
		return nil, err
	}
	return toTareaResponse(tarea), nil
}

// TareasEmpresa tareas de la empresa, con filtro opcional por código de estado.
func (uc *TareaUseCase) TareasEmpresa(empresaID, estadoCodigo string) ([]*dto.TareaResponse, error) {
	estado, err := filtroEstadoTarea(estadoCodigo)
	if err != nil {
		return nil, err
	}
	tareas, err := uc.tareaRepo.ListByEmpresa(empresaID, estado)
	if err != nil {
		return nil, err
	}
	return toTareaResponses(tareas), nil
}

// TareasEmpleado tareas asignadas al empleado, con filtro opcional por estado.
func (uc *TareaUseCase) TareasEmpleado(empleadoID, estadoCodigo string) ([]*dto.TareaResponse, error) {
	estado, err := filtroEstadoTarea(estadoCodigo)
	if err != nil {
		return nil, err
	}
	tareas, err := uc.tareaRepo.ListByEmpleado(empleadoID, estado)
	if err != nil {
		return nil, err
	}
	return toTareaResponses(tareas), nil
}

// CambiarEstado transiciona la tarea al estado indicado y registra el cambio
// en el historial dentro de la misma transacción. Los estados Completada y
// Cancelada son terminales. Completar estampa la fecha.
func (uc *TareaUseCase) CambiarEstado(ctx context.Context, actorID, tareaID string, in dto.CambiarEstadoTareaRequest) (*dto.TareaResponse, error) {
	nuevo, ok := entity.EstadoTareaDesdeCodigo(in.Estado)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	tarea, err := uc.tareaAccesible(actorID, tareaID)
	if err != nil {
		return nil, err
	}
	if tarea.Estado == nuevo {
		return toTareaResponse(tarea), nil
	}
	if tarea.Estado.EsTerminal() {
		return nil, domain.ErrConflict
	}
	anterior := tarea.Estado
	now := time.Now()
	tarea.Estado = nuevo
	if nuevo == entity.TareaCompletada {
		tarea.FechaCompletada = &now
	}
	tarea.UpdatedAt = now
	err = uc.tx.RunTarea(ctx, func(repo repository.TareaRepository) error {
		if err := repo.Update(tarea); err != nil {
			return err
		}
		return repo.CrearHistorial(&entity.TareaHistorial{
			ID:             uuid.New().String(),
			TareaID:        tareaID,
			EstadoAnterior: anterior,
			EstadoNuevo:    nuevo,
			Motivo:         in.Motivo,
			CambiadoPor:    actorID,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toTareaResponse(tarea), nil
}

// Comentar agrega un comentario a la tarea. Solo la empresa puede marcar
// comentarios internos.
func (uc *TareaUseCase) Comentar(actorID, tareaID string, in dto.ComentarTareaRequest) (*dto.ComentarioTareaResponse, error) {
	tarea, err := uc.tareaAccesible(actorID, tareaID)
	if err != nil {
		return nil, err
	}
	if in.EsInterno && actorID != tarea.EmpresaID {
		return nil, domain.ErrForbidden
	}
	c := &entity.TareaComentario{
		ID:         uuid.New().String(),
		TareaID:    tareaID,
		AutorID:    actorID,
		Comentario: in.Comentario,
		EsInterno:  in.EsInterno,
		CreatedAt:  time.Now(),
	}
	if err := uc.tareaRepo.CrearComentario(c); err != nil {
		return nil, err
	}
	return toComentarioResponse(c), nil
}

// Comentarios comentarios de la tarea. El empleado no ve los internos.
func (uc *TareaUseCase) Comentarios(actorID, tareaID string) ([]*dto.ComentarioTareaResponse, error) {
	tarea, err := uc.tareaAccesible(actorID, tareaID)
	if err != nil {
		return nil, err
	}
	incluirInternos := actorID == tarea.EmpresaID
	comentarios, err := uc.tareaRepo.ListComentarios(tareaID, incluirInternos)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ComentarioTareaResponse, 0, len(comentarios))
	for _, c := range comentarios {
		out = append(out, toComentarioResponse(c))
	}
	return out, nil
}

// Historial cambios de estado de la tarea, más antiguo primero.
func (uc *TareaUseCase) Historial(actorID, tareaID string) ([]*dto.HistorialTareaResponse, error) {
	if _, err := uc.tareaAccesible(actorID, tareaID); err != nil {
		return nil, err
	}
	hist, err := uc.tareaRepo.ListHistorial(tareaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HistorialTareaResponse, 0, len(hist))
	for _, h := range hist {
		out = append(out, &dto.HistorialTareaResponse{
			ID:             h.ID,
			EstadoAnterior: h.EstadoAnterior.Codigo(),
			EstadoNuevo:    h.EstadoNuevo.Codigo(),
			Motivo:         h.Motivo,
			CambiadoPor:    h.CambiadoPor,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out, nil
}

// EstadisticasEmpresa conteo de tareas de la empresa por estado.
func (uc *TareaUseCase) EstadisticasEmpresa(empresaID string) (*dto.EstadisticasTareasResponse, error) {
	tareas, err := uc.tareaRepo.ListByEmpresa(empresaID, nil)
	if err != nil {
		return nil, err
	}
	return contarTareas(tareas), nil
}

// EstadisticasEmpleado conteo de tareas del empleado por estado.
func (uc *TareaUseCase) EstadisticasEmpleado(empleadoID string) (*dto.EstadisticasTareasResponse, error) {
	tareas, err := uc.tareaRepo.ListByEmpleado(empleadoID, nil)
	if err != nil {
		return nil, err
	}
	return contarTareas(tareas), nil
}

// tareaAccesible carga la tarea y verifica que el actor sea la empresa que
// la creó o el empleado asignado.
func (uc *TareaUseCase) tareaAccesible(actorID, tareaID string) (*entity.TareaAsignada, error) {
	tarea, err := uc.tareaRepo.GetByID(tareaID)
	if err != nil {
		return nil, err
	}
	if tarea == nil {
		return nil, domain.ErrNotFound
	}
	if actorID != tarea.EmpresaID && actorID != tarea.EmpleadoID {
		return nil, domain.ErrForbidden
	}
	return tarea, nil
}

func filtroEstadoTarea(codigo string) (*entity.EstadoTarea, error) {
	if codigo == "" {
		return nil, nil
	}
	estado, ok := entity.EstadoTareaDesdeCodigo(codigo)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return &estado, nil
}

func contarTareas(tareas []*entity.TareaAsignada) *dto.EstadisticasTareasResponse {
	res := &dto.EstadisticasTareasResponse{Total: len(tareas)}
	for _, t := range tareas {
		switch t.Estado {
		case entity.TareaPendiente:
			res.Pendientes++
		case entity.TareaEnProgreso:
			res.EnProgreso++
		case entity.TareaCompletada:
			res.Completadas++
		case entity.TareaCancelada:
			res.Canceladas++
		}
	}
	return res
}

func toTareaResponse(t *entity.TareaAsignada) *dto.TareaResponse {
	if t == nil {
		return nil
	}
	return &dto.TareaResponse{
		ID:              t.ID,
		EmpresaID:       t.EmpresaID,
		EmpleadoID:      t.EmpleadoID,
		Titulo:          t.Titulo,
		Descripcion:     t.Descripcion,
		PrioridadID:     int(t.Prioridad),
		Estado:          t.Estado.Codigo(),
		FechaAsignacion: t.FechaAsignacion,
		FechaLimite:     t.FechaLimite,
		FechaCompletada: t.FechaCompletada,
		NotasEmpresa:    t.NotasEmpresa,
		NotasEmpleado:   t.NotasEmpleado,
	}
}

func toTareaResponses(tareas []*entity.TareaAsignada) []*dto.TareaResponse {
	out := make([]*dto.TareaResponse, 0, len(tareas))
	for _, t := range tareas {
		out = append(out, toTareaResponse(t))
	}
	return out
}

func toComentarioResponse(c *entity.TareaComentario) *dto.ComentarioTareaResponse {
	return &dto.ComentarioTareaResponse{
		ID:         c.ID,
		AutorID:    c.AutorID,
		Comentario: c.Comentario,
		EsInterno:  c.EsInterno,
		CreatedAt:  c.CreatedAt,
	}
}
