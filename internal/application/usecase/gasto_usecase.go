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
	"github.com/aureum-app/aureum-api/pkg/logger"
)

// GastoUseCase casos de uso de gastos: registro personal, flujo de aprobación
// de gastos de empleado y gastos planificados.
type GastoUseCase struct {
	gastoRepo       repository.GastoRepository
	planRepo        repository.GastoPlanificadoRepository
	categoriaRepo   repository.CategoriaRepository
	userRepo        repository.UserRepository
	presupuestoRepo repository.PresupuestoRepository
	planTx          PlanTxRunner
	umbral          decimal.Decimal
	log             *logger.Logger
}

// NewGastoUseCase construye el caso de uso de gastos. umbral es el monto bajo
// el cual un gasto de empleado se aprueba automáticamente.
func NewGastoUseCase(
	gastoRepo repository.GastoRepository,
	planRepo repository.GastoPlanificadoRepository,
	categoriaRepo repository.CategoriaRepository,
	userRepo repository.UserRepository,
	presupuestoRepo repository.PresupuestoRepository,
	planTx PlanTxRunner,
	umbral decimal.Decimal,
	log *logger.Logger,
) *GastoUseCase {
	return &GastoUseCase{
		gastoRepo:       gastoRepo,
		planRepo:        planRepo,
		categoriaRepo:   categoriaRepo,
		userRepo:        userRepo,
		presupuestoRepo: presupuestoRepo,
		planTx:          planTx,
		umbral:          umbral,
		log:             log,
	}
}

// CrearGasto registra un gasto personal. Nace Aprobado: el flujo de aprobación
// solo aplica a gastos de empleado. Si el gasto supera el presupuesto mensual
// de la categoría se registra una advertencia pero nunca se bloquea.
func (uc *GastoUseCase) CrearGasto(userID string, in dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	if err := uc.validarEntrada(userID, in.CategoriaID, in.Monto, in.TipoPagoID); err != nil {
		return nil, err
	}
	now := time.Now()
	gasto := &entity.Gasto{
		ID:               uuid.New().String(),
		UserID:           userID,
		CategoriaID:      in.CategoriaID,
		TipoPago:         entity.TipoPago(in.TipoPagoID),
		Concepto:         in.Concepto,
		Descripcion:      in.Descripcion,
		Monto:            in.Monto,
		Fecha:            in.Fecha,
		Proveedor:        in.Proveedor,
		Ubicacion:        in.Ubicacion,
		Notas:            in.Notas,
		EsDeducible:      in.EsDeducible,
		EstadoAprobacion: entity.AprobacionAprobado,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	uc.registrarEnPresupuesto(gasto)
	return toGastoResponse(gasto), nil
}

// CrearGastoEmpleado registra un gasto de empleado aplicando la regla del
// umbral: monto menor al umbral → aprobado automáticamente con la empresa como
// aprobador; monto igual o mayor → pendiente de decisión. La decisión es una
// función pura del monto.
func (uc *GastoUseCase) CrearGastoEmpleado(empleadoID string, in dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	empleado, err := uc.userRepo.GetByID(empleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrUserNotFound
	}
	if empleado.Rol != entity.RolEmpleado || empleado.CreatedByEmpresaID == nil {
		return nil, domain.ErrForbidden
	}
	if err := uc.validarEntrada(empleadoID, in.CategoriaID, in.Monto, in.TipoPagoID); err != nil {
		return nil, err
	}

	empresaID := *empleado.CreatedByEmpresaID
	now := time.Now()
	gasto := &entity.Gasto{
		ID:          uuid.New().String(),
		UserID:      empleadoID,
		EmpresaID:   &empresaID,
		CategoriaID: in.CategoriaID,
		TipoPago:    entity.TipoPago(in.TipoPagoID),
		Concepto:    in.Concepto,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       in.Fecha,
		Proveedor:   in.Proveedor,
		Ubicacion:   in.Ubicacion,
		Notas:       in.Notas,
		EsDeducible: in.EsDeducible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Monto.LessThan(uc.umbral) {
		gasto.EstadoAprobacion = entity.AprobacionAprobado
		gasto.AprobadoPor = &empresaID
		gasto.FechaAprobacion = &now
	} else {
		gasto.EstadoAprobacion = entity.AprobacionPendiente
		gasto.RequiereAprobacion = true
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	return toGastoResponse(gasto), nil
}

// AprobarGasto aprueba un gasto pendiente de un empleado de la empresa.
// UPDATE condicional: si el gasto no existe, no pertenece a la empresa o ya
// fue decidido, no afecta filas y devuelve ErrGastoYaProcesado.
func (uc *GastoUseCase) AprobarGasto(empresaID, gastoID, comentario string) (*dto.GastoResponse, error) {
	ok, err := uc.gastoRepo.Aprobar(gastoID, empresaID, empresaID, comentario, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrGastoYaProcesado
	}
	gasto, err := uc.gastoRepo.GetByID(gastoID)
	if err != nil {
		return nil, err
	}
	return toGastoResponse(gasto), nil
}

// RechazarGasto rechaza un gasto pendiente. El motivo es obligatorio.
func (uc *GastoUseCase) RechazarGasto(empresaID, gastoID, motivo string) (*dto.GastoResponse, error) {
	if motivo == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.gastoRepo.Rechazar(gastoID, empresaID, empresaID, motivo, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrGastoYaProcesado
	}
	gasto, err := uc.gastoRepo.GetByID(gastoID)
	if err != nil {
		return nil, err
	}
	return toGastoResponse(gasto), nil
}

// GastosPendientes gastos de empleados de la empresa a la espera de decisión.
func (uc *GastoUseCase) GastosPendientes(empresaID string) ([]*dto.GastoResponse, error) {
	gastos, err := uc.gastoRepo.ListPendientesByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	return toGastoResponses(gastos), nil
}

// GastosEmpleado gastos propios de un empleado, opcionalmente filtrados por
// estado (código textual: pendiente, aprobado, rechazado).
func (uc *GastoUseCase) GastosEmpleado(empleadoID, estadoCodigo string) ([]*dto.GastoResponse, error) {
	if estadoCodigo == "" {
		hasta := time.Now()
		desde := hasta.AddDate(-1, 0, 0)
		gastos, err := uc.gastoRepo.ListByUser(empleadoID, desde, hasta, 100, 0)
		if err != nil {
			return nil, err
		}
		return toGastoResponses(gastos), nil
	}
	estado, ok := entity.EstadoAprobacionDesdeCodigo(estadoCodigo)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	gastos, err := uc.gastoRepo.ListByUserEstado(empleadoID, estado)
	if err != nil {
		return nil, err
	}
	return toGastoResponses(gastos), nil
}

// ListarGastos gastos del usuario en el período, paginados.
func (uc *GastoUseCase) ListarGastos(userID string, desde, hasta time.Time, page dto.PageRequest) ([]*dto.GastoResponse, error) {
	page.DefaultPage()
	gastos, err := uc.gastoRepo.ListByUser(userID, desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toGastoResponses(gastos), nil
}

// ResumenPorCategoria totales de gastos aprobados agrupados por categoría.
func (uc *GastoUseCase) ResumenPorCategoria(userID string, desde, hasta time.Time) ([]dto.ResumenCategoriaResponse, error) {
	totales, err := uc.gastoRepo.ResumenPorCategoria(userID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResumenCategoriaResponse, 0, len(totales))
	for _, t := range totales {
		out = append(out, dto.ResumenCategoriaResponse{
			CategoriaID: t.CategoriaID,
			Nombre:      t.Nombre,
			Total:       t.Total,
			Conteo:      t.Conteo,
		})
	}
	return out, nil
}

// EliminarGasto elimina un gasto propio del usuario.
func (uc *GastoUseCase) EliminarGasto(userID, gastoID string) error {
	gasto, err := uc.gastoRepo.GetByID(gastoID)
	if err != nil {
		return err
	}
	if gasto == nil {
		return domain.ErrNotFound
	}
	if gasto.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.gastoRepo.Delete(gastoID)
}

// ── Gastos planificados ──────────────────────────────────────────────────────

// CrearGastoPlanificado registra un gasto futuro previsto.
func (uc *GastoUseCase) CrearGastoPlanificado(userID string, in dto.CrearGastoPlanificadoRequest) (*dto.GastoPlanificadoResponse, error) {
	if !in.MontoEstimado.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarCategoriaGasto(userID, in.CategoriaID); err != nil {
		return nil, err
	}
	now := time.Now()
	plan := &entity.GastoPlanificado{
		ID:               uuid.New().String(),
		UserID:           userID,
		CategoriaID:      in.CategoriaID,
		Concepto:         in.Concepto,
		MontoEstimado:    in.MontoEstimado,
		FechaPlanificada: in.FechaPlanificada,
		EsRecurrente:     in.EsRecurrente,
		FrecuenciaDias:   in.FrecuenciaDias,
		Estado:           entity.PlanificadoPendiente,
		Notas:            in.Notas,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// ListarGastosPlanificados planes del usuario; estadoCodigo vacío devuelve todos.
func (uc *GastoUseCase) ListarGastosPlanificados(userID, estadoCodigo string) ([]*dto.GastoPlanificadoResponse, error) {
	var estado *entity.EstadoPlanificado
	if estadoCodigo != "" {
		switch estadoCodigo {
		case "pendiente":
			e := entity.PlanificadoPendiente
			estado = &e
		case "ejecutado":
			e := entity.PlanificadoEjecutado
			estado = &e
		case "cancelado":
			e := entity.PlanificadoCancelado
			estado = &e
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	planes, err := uc.planRepo.ListByUser(userID, estado)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GastoPlanificadoResponse, 0, len(planes))
	for _, p := range planes {
		out = append(out, toPlanResponse(p))
	}
	return out, nil
}

// EjecutarGastoPlanificado convierte un plan pendiente en un gasto real:
// inserta el gasto y marca el plan como Ejecutado en una sola transacción.
func (uc *GastoUseCase) EjecutarGastoPlanificado(ctx context.Context, userID, planID string, in dto.EjecutarGastoPlanificadoRequest) (*dto.GastoResponse, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if plan.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if plan.Estado != entity.PlanificadoPendiente {
		return nil, domain.ErrConflict
	}
	tipoPago := entity.TipoPago(in.TipoPagoID)
	if !tipoPago.Valido() {
		return nil, domain.ErrInvalidInput
	}

	monto := plan.MontoEstimado
	if in.Monto != nil {
		if !in.Monto.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		monto = *in.Monto
	}
	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	gasto := &entity.Gasto{
		ID:               uuid.New().String(),
		UserID:           userID,
		CategoriaID:      plan.CategoriaID,
		TipoPago:         tipoPago,
		Concepto:         plan.Concepto,
		Monto:            monto,
		Fecha:            fecha,
		Notas:            plan.Notas,
		EstadoAprobacion: entity.AprobacionAprobado,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err = uc.planTx.RunPlan(ctx, func(planRepo repository.GastoPlanificadoRepository, gastoRepo repository.GastoRepository) error {
		if err := gastoRepo.Create(gasto); err != nil {
			return err
		}
		plan.Estado = entity.PlanificadoEjecutado
		plan.GastoGeneradoID = &gasto.ID
		plan.UpdatedAt = now
		return planRepo.Update(plan)
	})
	if err != nil {
		return nil, err
	}
	uc.registrarEnPresupuesto(gasto)
	return toGastoResponse(gasto), nil
}

// CancelarGastoPlanificado cancela un plan pendiente. Cancelar uno ya
// cancelado es éxito idempotente; uno ejecutado no se puede cancelar.
func (uc *GastoUseCase) CancelarGastoPlanificado(userID, planID string) (*dto.GastoPlanificadoResponse, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if plan.UserID != userID {
		return nil, domain.ErrForbidden
	}
	switch plan.Estado {
	case entity.PlanificadoCancelado:
		return toPlanResponse(plan), nil
	case entity.PlanificadoEjecutado:
		return nil, domain.ErrConflict
	}
	plan.Estado = entity.PlanificadoCancelado
	plan.UpdatedAt = time.Now()
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// validarEntrada valida monto, tipo de pago y categoría para un gasto nuevo.
func (uc *GastoUseCase) validarEntrada(userID, categoriaID string, monto decimal.Decimal, tipoPagoID int) error {
	if !monto.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !entity.TipoPago(tipoPagoID).Valido() {
		return domain.ErrInvalidInput
	}
	return uc.validarCategoriaGasto(userID, categoriaID)
}

// validarCategoriaGasto la categoría debe existir, ser del usuario o global,
// y admitir gastos.
func (uc *GastoUseCase) validarCategoriaGasto(userID, categoriaID string) error {
	cat, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrCategoriaInvalida
	}
	if cat.UserID != nil && *cat.UserID != userID {
		return domain.ErrForbidden
	}
	if !cat.AplicaAGasto() {
		return domain.ErrCategoriaInvalida
	}
	return nil
}

// registrarEnPresupuesto acumula el gasto en el presupuesto del mes si existe
// y advierte si quedó excedido. Nunca bloquea el registro del gasto.
func (uc *GastoUseCase) registrarEnPresupuesto(gasto *entity.Gasto) {
	pres, err := uc.presupuestoRepo.GetByCategoriaMes(gasto.UserID, gasto.CategoriaID, int(gasto.Fecha.Month()), gasto.Fecha.Year())
	if err != nil {
		uc.log.Warn().Err(err).
			Str("user_id", gasto.UserID).
			Str("categoria_id", gasto.CategoriaID).
			Msg("no se pudo consultar el presupuesto del mes")
		return
	}
	if pres == nil {
		return
	}
	if err := uc.presupuestoRepo.AcumularGasto(pres.ID, gasto.Monto); err != nil {
		uc.log.Warn().Err(err).Str("presupuesto_id", pres.ID).Msg("no se pudo acumular el gasto en el presupuesto")
		return
	}
	if pres.GastadoActual.Add(gasto.Monto).GreaterThan(pres.LimiteMensual) {
		uc.log.Warn().
			Str("user_id", gasto.UserID).
			Str("categoria_id", gasto.CategoriaID).
			Str("limite", pres.LimiteMensual.String()).
			Str("gastado", pres.GastadoActual.Add(gasto.Monto).String()).
			Msg("presupuesto mensual excedido")
	}
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	if g == nil {
		return nil
	}
	return &dto.GastoResponse{
		ID:                 g.ID,
		UserID:             g.UserID,
		EmpresaID:          g.EmpresaID,
		CategoriaID:        g.CategoriaID,
		TipoPagoID:         int(g.TipoPago),
		Concepto:           g.Concepto,
		Descripcion:        g.Descripcion,
		Monto:              g.Monto,
		Fecha:              g.Fecha,
		Proveedor:          g.Proveedor,
		Ubicacion:          g.Ubicacion,
		Notas:              g.Notas,
		EsDeducible:        g.EsDeducible,
		EstadoAprobacion:   g.EstadoAprobacion.Codigo(),
		RequiereAprobacion: g.RequiereAprobacion,
		AprobadoPor:        g.AprobadoPor,
		FechaAprobacion:    g.FechaAprobacion,
		CreatedAt:          g.CreatedAt,
	}
}

func toGastoResponses(gastos []*entity.Gasto) []*dto.GastoResponse {
	out := make([]*dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, toGastoResponse(g))
	}
	return out
}

func toPlanResponse(p *entity.GastoPlanificado) *dto.GastoPlanificadoResponse {
	if p == nil {
		return nil
	}
	return &dto.GastoPlanificadoResponse{
		ID:               p.ID,
		CategoriaID:      p.CategoriaID,
		Concepto:         p.Concepto,
		MontoEstimado:    p.MontoEstimado,
		FechaPlanificada: p.FechaPlanificada,
		EsRecurrente:     p.EsRecurrente,
		FrecuenciaDias:   p.FrecuenciaDias,
		Estado:           p.Estado.Codigo(),
		GastoGeneradoID:  p.GastoGeneradoID,
		Notas:            p.Notas,
		CreatedAt:        p.CreatedAt,
	}
}
