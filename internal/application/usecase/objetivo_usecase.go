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

// ObjetivoUseCase casos de uso de objetivos de ahorro. Aportes y retiros
// actualizan saldo e historial dentro de una misma transacción: la suma del
// historial siempre coincide con el saldo.
type ObjetivoUseCase struct {
	objetivoRepo repository.ObjetivoRepository
	tx           ObjetivoTxRunner
}

// NewObjetivoUseCase construye el caso de uso de objetivos.
func NewObjetivoUseCase(objetivoRepo repository.ObjetivoRepository, tx ObjetivoTxRunner) *ObjetivoUseCase {
	return &ObjetivoUseCase{objetivoRepo: objetivoRepo, tx: tx}
}

// CrearObjetivo crea un objetivo de ahorro con saldo inicial cero.
func (uc *ObjetivoUseCase) CrearObjetivo(userID string, in dto.CrearObjetivoRequest) (*dto.ObjetivoResponse, error) {
	if !in.MetaTotal.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	prioridad := entity.Prioridad(in.PrioridadID)
	if !prioridad.Valido() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	obj := &entity.Objetivo{
		ID:           uuid.New().String(),
		UserID:       userID,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		MetaTotal:    in.MetaTotal,
		AhorroActual: decimal.Zero,
		FechaLimite:  in.FechaLimite,
		Prioridad:    prioridad,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.objetivoRepo.Create(obj); err != nil {
		return nil, err
	}
	return toObjetivoResponse(obj), nil
}

// ListarObjetivos objetivos del usuario, prioridad más alta primero.
func (uc *ObjetivoUseCase) ListarObjetivos(userID string) ([]*dto.ObjetivoResponse, error) {
	objetivos, err := uc.objetivoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ObjetivoResponse, 0, len(objetivos))
	for _, o := range objetivos {
		out = append(out, toObjetivoResponse(o))
	}
	return out, nil
}

// AgregarDinero aporta monto al objetivo: incrementa el saldo e inserta el
// movimiento del historial en una sola transacción.
func (uc *ObjetivoUseCase) AgregarDinero(ctx context.Context, userID, objetivoID string, in dto.MovimientoObjetivoRequest) (*dto.ObjetivoResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarPropiedad(userID, objetivoID); err != nil {
		return nil, err
	}
	err := uc.tx.RunObjetivo(ctx, func(objRepo repository.ObjetivoRepository) error {
		if err := objRepo.AgregarAhorro(objetivoID, in.Monto); err != nil {
			return err
		}
		return objRepo.CrearMovimiento(&entity.ObjetivoMovimiento{
			ID:          uuid.New().String(),
			ObjetivoID:  objetivoID,
			Monto:       in.Monto,
			EsAporte:    true,
			Descripcion: in.Descripcion,
			Fecha:       time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.objetivoActual(objetivoID)
}

// RetirarDinero retira monto del objetivo. El decremento es un UPDATE
// condicional sobre el saldo: sin fondos suficientes no afecta filas y la
// transacción termina en ErrFondosInsuficientes sin registrar movimiento.
func (uc *ObjetivoUseCase) RetirarDinero(ctx context.Context, userID, objetivoID string, in dto.MovimientoObjetivoRequest) (*dto.ObjetivoResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarPropiedad(userID, objetivoID); err != nil {
		return nil, err
	}
	err := uc.tx.RunObjetivo(ctx, func(objRepo repository.ObjetivoRepository) error {
		ok, err := objRepo.RetirarAhorro(objetivoID, in.Monto)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrFondosInsuficientes
		}
		return objRepo.CrearMovimiento(&entity.ObjetivoMovimiento{
			ID:          uuid.New().String(),
			ObjetivoID:  objetivoID,
			Monto:       in.Monto,
			EsAporte:    false,
			Descripcion: in.Descripcion,
			Fecha:       time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.objetivoActual(objetivoID)
}

// Historial movimientos del objetivo, más reciente primero.
func (uc *ObjetivoUseCase) Historial(userID, objetivoID string, page dto.PageRequest) ([]*dto.MovimientoObjetivoResponse, error) {
	if err := uc.verificarPropiedad(userID, objetivoID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	movs, err := uc.objetivoRepo.ListMovimientos(objetivoID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoObjetivoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, &dto.MovimientoObjetivoResponse{
			ID:          m.ID,
			Monto:       m.Monto,
			EsAporte:    m.EsAporte,
			Descripcion: m.Descripcion,
			Fecha:       m.Fecha,
		})
	}
	return out, nil
}

// Resumen agregado de los objetivos del usuario.
func (uc *ObjetivoUseCase) Resumen(userID string) (*dto.ResumenObjetivosResponse, error) {
	objetivos, err := uc.objetivoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	res := &dto.ResumenObjetivosResponse{
		AhorroTotal: decimal.Zero,
		MetaTotal:   decimal.Zero,
	}
	var sumaProgreso float64
	for _, o := range objetivos {
		res.Total++
		if o.Completado() {
			res.Completados++
		}
		res.AhorroTotal = res.AhorroTotal.Add(o.AhorroActual)
		res.MetaTotal = res.MetaTotal.Add(o.MetaTotal)
		sumaProgreso += o.ProgresoPorcentaje()
	}
	if res.Total > 0 {
		res.ProgresoPromedio = sumaProgreso / float64(res.Total)
	}
	return res, nil
}

// EliminarObjetivo elimina un objetivo propio con su historial.
func (uc *ObjetivoUseCase) EliminarObjetivo(userID, objetivoID string) error {
	if err := uc.verificarPropiedad(userID, objetivoID); err != nil {
		return err
	}
	return uc.objetivoRepo.Delete(objetivoID)
}

func (uc *ObjetivoUseCase) verificarPropiedad(userID, objetivoID string) error {
	obj, err := uc.objetivoRepo.GetByID(objetivoID)
	if err != nil {
		return err
	}
	if obj == nil {
		return domain.ErrNotFound
	}
	if obj.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *ObjetivoUseCase) objetivoActual(objetivoID string) (*dto.ObjetivoResponse, error) {
	obj, err := uc.objetivoRepo.GetByID(objetivoID)
	if err != nil {
		return nil, err
	}
	return toObjetivoResponse(obj), nil
}

func toObjetivoResponse(o *entity.Objetivo) *dto.ObjetivoResponse {
	if o == nil {
		return nil
	}
	return &dto.ObjetivoResponse{
		ID:                 o.ID,
		Nombre:             o.Nombre,
		Descripcion:        o.Descripcion,
		MetaTotal:          o.MetaTotal,
		AhorroActual:       o.AhorroActual,
		MontoRestante:      o.MontoRestante(),
		ProgresoPorcentaje: o.ProgresoPorcentaje(),
		Completado:         o.Completado(),
		FechaLimite:        o.FechaLimite,
		PrioridadID:        int(o.Prioridad),
		CreatedAt:          o.CreatedAt,
	}
}
