package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// PresupuestoUseCase límites mensuales de gasto por categoría. El presupuesto
// es informativo: excederlo genera una advertencia al registrar el gasto,
// nunca lo bloquea.
type PresupuestoUseCase struct {
	presupuestoRepo repository.PresupuestoRepository
	categoriaRepo   repository.CategoriaRepository
}

// NewPresupuestoUseCase construye el caso de uso de presupuestos.
func NewPresupuestoUseCase(presupuestoRepo repository.PresupuestoRepository, categoriaRepo repository.CategoriaRepository) *PresupuestoUseCase {
	return &PresupuestoUseCase{presupuestoRepo: presupuestoRepo, categoriaRepo: categoriaRepo}
}

// CrearPresupuesto fija el límite mensual de una categoría. Un usuario solo
// puede tener un presupuesto por categoría y mes.
func (uc *PresupuestoUseCase) CrearPresupuesto(userID string, in dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	if !in.LimiteMensual.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrCategoriaInvalida
	}
	if cat.UserID != nil && *cat.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if existente, err := uc.presupuestoRepo.GetByCategoriaMes(userID, in.CategoriaID, in.Mes, in.Anio); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Presupuesto{
		ID:            uuid.New().String(),
		UserID:        userID,
		CategoriaID:   in.CategoriaID,
		LimiteMensual: in.LimiteMensual,
		Mes:           in.Mes,
		Anio:          in.Anio,
		GastadoActual: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.presupuestoRepo.Create(p); err != nil {
		return nil, err
	}
	return toPresupuestoResponse(p), nil
}

// ListarPresupuestos presupuestos del usuario para el mes. Mes o año en cero
// usan el mes en curso.
func (uc *PresupuestoUseCase) ListarPresupuestos(userID string, mes, anio int) ([]*dto.PresupuestoResponse, error) {
	if mes == 0 || anio == 0 {
		now := time.Now()
		mes = int(now.Month())
		anio = now.Year()
	}
	if mes < 1 || mes > 12 {
		return nil, domain.ErrInvalidInput
	}
	presupuestos, err := uc.presupuestoRepo.ListByUser(userID, mes, anio)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PresupuestoResponse, 0, len(presupuestos))
	for _, p := range presupuestos {
		out = append(out, toPresupuestoResponse(p))
	}
	return out, nil
}

// ActualizarLimite cambia el límite mensual de un presupuesto propio.
func (uc *PresupuestoUseCase) ActualizarLimite(userID, presupuestoID string, limite decimal.Decimal) (*dto.PresupuestoResponse, error) {
	if !limite.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.presupuesto(userID, presupuestoID)
	if err != nil {
		return nil, err
	}
	p.LimiteMensual = limite
	p.UpdatedAt = time.Now()
	if err := uc.presupuestoRepo.Update(p); err != nil {
		return nil, err
	}
	return toPresupuestoResponse(p), nil
}

// EliminarPresupuesto elimina un presupuesto propio.
func (uc *PresupuestoUseCase) EliminarPresupuesto(userID, presupuestoID string) error {
	if _, err := uc.presupuesto(userID, presupuestoID); err != nil {
		return err
	}
	return uc.presupuestoRepo.Delete(presupuestoID)
}

func (uc *PresupuestoUseCase) presupuesto(userID, presupuestoID string) (*entity.Presupuesto, error) {
	p, err := uc.presupuestoRepo.GetByID(presupuestoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func toPresupuestoResponse(p *entity.Presupuesto) *dto.PresupuestoResponse {
	if p == nil {
		return nil
	}
	return &dto.PresupuestoResponse{
		ID:              p.ID,
		CategoriaID:     p.CategoriaID,
		LimiteMensual:   p.LimiteMensual,
		Mes:             p.Mes,
		Anio:            p.Anio,
		GastadoActual:   p.GastadoActual,
		PorcentajeUsado: p.PorcentajeUsado(),
		EstaExcedido:    p.EstaExcedido(),
		CreatedAt:       p.CreatedAt,
	}
}
