package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// ProyectoUseCase casos de uso de proyectos de empresa: CRUD, checklist de
// metas con recálculo transaccional de progreso y gastos de proyecto.
type ProyectoUseCase struct {
	proyectoRepo repository.ProyectoRepository
	tx           ProyectoTxRunner
}

// NewProyectoUseCase construye el caso de uso de proyectos.
func NewProyectoUseCase(proyectoRepo repository.ProyectoRepository, tx ProyectoTxRunner) *ProyectoUseCase {
	return &ProyectoUseCase{proyectoRepo: proyectoRepo, tx: tx}
}

// CrearProyecto crea un proyecto en estado Planificado.
// La fecha límite no puede ser anterior a la de inicio.
func (uc *ProyectoUseCase) CrearProyecto(empresaID string, in dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.FechaLimite != nil && in.FechaLimite.Before(in.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}
	if in.Presupuesto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proyecto{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		Titulo:       in.Titulo,
		Descripcion:  in.Descripcion,
		Estado:       entity.ProyectoPlanificado,
		FechaInicio:  in.FechaInicio,
		FechaLimite:  in.FechaLimite,
		Presupuesto:  in.Presupuesto,
		MontoGastado: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.proyectoRepo.Create(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// ListarProyectos proyectos de la empresa, más reciente primero.
func (uc *ProyectoUseCase) ListarProyectos(empresaID string) ([]*dto.ProyectoResponse, error) {
	proyectos, err := uc.proyectoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProyectoResponse, 0, len(proyectos))
	for _, p := range proyectos {
		out = append(out, toProyectoResponse(p))
	}
	return out, nil
}

// ObtenerProyecto detalle de un proyecto de la empresa.
func (uc *ProyectoUseCase) ObtenerProyecto(empresaID, proyectoID string) (*dto.ProyectoResponse, error) {
	p, err := uc.proyecto(empresaID, proyectoID)
	if err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// ActualizarProyecto modifica datos del proyecto. Cambiar el estado a
// Completado a mano también estampa la fecha.
func (uc *ProyectoUseCase) ActualizarProyecto(empresaID, proyectoID string, in dto.ActualizarProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := uc.proyecto(empresaID, proyectoID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if in.Titulo != "" {
		p.Titulo = in.Titulo
	}
	if in.Descripcion != "" {
		p.Descripcion = in.Descripcion
	}
	if in.FechaLimite != nil {
		if in.FechaLimite.Before(p.FechaInicio) {
			return nil, domain.ErrInvalidInput
		}
		p.FechaLimite = in.FechaLimite
	}
	if in.Estado != "" {
		estado, ok := estadoProyectoDesdeCodigo(in.Estado)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		p.Estado = estado
		if estado == entity.ProyectoCompletado && p.FechaCompletado == nil {
			p.FechaCompletado = &now
		}
	}
	p.UpdatedAt = now
	if err := uc.proyectoRepo.Update(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// EliminarProyecto elimina un proyecto de la empresa con metas y gastos.
func (uc *ProyectoUseCase) EliminarProyecto(empresaID, proyectoID string) error {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return err
	}
	return uc.proyectoRepo.Delete(proyectoID)
}

// AgregarMeta añade una meta al checklist y recalcula el progreso en la misma
// transacción.
func (uc *ProyectoUseCase) AgregarMeta(ctx context.Context, empresaID, proyectoID string, in dto.CrearMetaRequest) (*dto.MetaResponse, error) {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	meta := &entity.ProyectoMeta{
		ID:         uuid.New().String(),
		ProyectoID: proyectoID,
		Titulo:     in.Titulo,
		Orden:      in.Orden,
		CreatedAt:  time.Now(),
	}
	err := uc.tx.RunProyecto(ctx, func(repo repository.ProyectoRepository) error {
		if err := repo.CrearMeta(meta); err != nil {
			return err
		}
		return recalcularProgreso(repo, proyectoID)
	})
	if err != nil {
		return nil, err
	}
	return toMetaResponse(meta), nil
}

// CompletarMeta marca una meta como completada y recalcula el progreso en la
// misma transacción. Con el checklist al 100% el proyecto pasa a Completado.
func (uc *ProyectoUseCase) CompletarMeta(ctx context.Context, empresaID, proyectoID, metaID string) (*dto.MetaResponse, error) {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	var meta *entity.ProyectoMeta
	err := uc.tx.RunProyecto(ctx, func(repo repository.ProyectoRepository) error {
		m, err := repo.GetMeta(metaID)
		if err != nil {
			return err
		}
		if m == nil || m.ProyectoID != proyectoID {
			return domain.ErrNotFound
		}
		if !m.Completado {
			now := time.Now()
			m.Completado = true
			m.FechaCompletado = &now
			if err := repo.UpdateMeta(m); err != nil {
				return err
			}
		}
		meta = m
		return recalcularProgreso(repo, proyectoID)
	})
	if err != nil {
		return nil, err
	}
	return toMetaResponse(meta), nil
}

// ReabrirMeta desmarca una meta completada y recalcula el progreso. Un
// proyecto que había quedado Completado vuelve a EnProgreso.
func (uc *ProyectoUseCase) ReabrirMeta(ctx context.Context, empresaID, proyectoID, metaID string) (*dto.MetaResponse, error) {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	var meta *entity.ProyectoMeta
	err := uc.tx.RunProyecto(ctx, func(repo repository.ProyectoRepository) error {
		m, err := repo.GetMeta(metaID)
		if err != nil {
			return err
		}
		if m == nil || m.ProyectoID != proyectoID {
			return domain.ErrNotFound
		}
		if m.Completado {
			m.Completado = false
			m.FechaCompletado = nil
			if err := repo.UpdateMeta(m); err != nil {
				return err
			}
		}
		meta = m
		return recalcularProgreso(repo, proyectoID)
	})
	if err != nil {
		return nil, err
	}
	return toMetaResponse(meta), nil
}

// ListarMetas checklist del proyecto en orden.
func (uc *ProyectoUseCase) ListarMetas(empresaID, proyectoID string) ([]*dto.MetaResponse, error) {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	metas, err := uc.proyectoRepo.ListMetas(proyectoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MetaResponse, 0, len(metas))
	for _, m := range metas {
		out = append(out, toMetaResponse(m))
	}
	return out, nil
}

// RegistrarGasto imputa un gasto al proyecto y actualiza el monto gastado en
// la misma transacción.
func (uc *ProyectoUseCase) RegistrarGasto(ctx context.Context, empresaID, proyectoID, registradoPor string, in dto.CrearGastoProyectoRequest) (*dto.GastoProyectoResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	gasto := &entity.ProyectoGasto{
		ID:            uuid.New().String(),
		ProyectoID:    proyectoID,
		Concepto:      in.Concepto,
		Monto:         in.Monto,
		Fecha:         in.Fecha,
		RegistradoPor: registradoPor,
		CreatedAt:     time.Now(),
	}
	err := uc.tx.RunProyecto(ctx, func(repo repository.ProyectoRepository) error {
		if err := repo.CrearGasto(gasto); err != nil {
			return err
		}
		p, err := repo.GetByID(proyectoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.MontoGastado = p.MontoGastado.Add(in.Monto)
		p.UpdatedAt = time.Now()
		return repo.Update(p)
	})
	if err != nil {
		return nil, err
	}
	return &dto.GastoProyectoResponse{
		ID:       gasto.ID,
		Concepto: gasto.Concepto,
		Monto:    gasto.Monto,
		Fecha:    gasto.Fecha,
	}, nil
}

// ListarGastos gastos imputados al proyecto.
func (uc *ProyectoUseCase) ListarGastos(empresaID, proyectoID string) ([]*dto.GastoProyectoResponse, error) {
	if _, err := uc.proyecto(empresaID, proyectoID); err != nil {
		return nil, err
	}
	gastos, err := uc.proyectoRepo.ListGastos(proyectoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GastoProyectoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, &dto.GastoProyectoResponse{
			ID:       g.ID,
			Concepto: g.Concepto,
			Monto:    g.Monto,
			Fecha:    g.Fecha,
		})
	}
	return out, nil
}

// Estadisticas agregado de los proyectos de la empresa.
func (uc *ProyectoUseCase) Estadisticas(empresaID string) (*dto.EstadisticasProyectosResponse, error) {
	stats, err := uc.proyectoRepo.Estadisticas(empresaID)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasProyectosResponse{
		Total:            stats.Total,
		PorEstado:        stats.PorEstado,
		ProgresoPromedio: stats.ProgresoPromedio,
	}, nil
}

// recalcularProgreso recalcula progreso = completadas/total*100 dentro de la
// transacción del caller. Sin metas el progreso existente no se toca. Al
// llegar exactamente a 100 el proyecto pasa a Completado con fecha; por
// debajo de 100 el estado no se modifica, salvo para reabrir uno completado.
func recalcularProgreso(repo repository.ProyectoRepository, proyectoID string) error {
	metas, err := repo.ListMetas(proyectoID)
	if err != nil {
		return err
	}
	progreso, aplica := entity.CalcularProgreso(metas)
	if !aplica {
		return nil
	}
	p, err := repo.GetByID(proyectoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	p.ProgresoPorcentaje = progreso
	if progreso == 100 {
		p.Estado = entity.ProyectoCompletado
		if p.FechaCompletado == nil {
			p.FechaCompletado = &now
		}
	} else if p.Estado == entity.ProyectoCompletado {
		p.Estado = entity.ProyectoEnProgreso
		p.FechaCompletado = nil
	}
	p.UpdatedAt = now
	return repo.Update(p)
}

func (uc *ProyectoUseCase) proyecto(empresaID, proyectoID string) (*entity.Proyecto, error) {
	p, err := uc.proyectoRepo.GetByID(proyectoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func estadoProyectoDesdeCodigo(codigo string) (entity.EstadoProyecto, bool) {
	switch codigo {
	case "planificado":
		return entity.ProyectoPlanificado, true
	case "en_progreso":
		return entity.ProyectoEnProgreso, true
	case "pausado":
		return entity.ProyectoPausado, true
	case "completado":
		return entity.ProyectoCompletado, true
	default:
		return 0, false
	}
}

func toProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProyectoResponse{
		ID:                 p.ID,
		Titulo:             p.Titulo,
		Descripcion:        p.Descripcion,
		Estado:             p.Estado.Codigo(),
		FechaInicio:        p.FechaInicio,
		FechaLimite:        p.FechaLimite,
		FechaCompletado:    p.FechaCompletado,
		ProgresoPorcentaje: p.ProgresoPorcentaje,
		Presupuesto:        p.Presupuesto,
		MontoGastado:       p.MontoGastado,
		CreatedAt:          p.CreatedAt,
	}
}

func toMetaResponse(m *entity.ProyectoMeta) *dto.MetaResponse {
	if m == nil {
		return nil
	}
	return &dto.MetaResponse{
		ID:              m.ID,
		Titulo:          m.Titulo,
		Completado:      m.Completado,
		Orden:           m.Orden,
		FechaCompletado: m.FechaCompletado,
	}
}
