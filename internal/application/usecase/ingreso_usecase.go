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

// IngresoUseCase casos de uso de ingresos del usuario.
type IngresoUseCase struct {
	ingresoRepo   repository.IngresoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewIngresoUseCase construye el caso de uso de ingresos.
func NewIngresoUseCase(ingresoRepo repository.IngresoRepository, categoriaRepo repository.CategoriaRepository) *IngresoUseCase {
	return &IngresoUseCase{ingresoRepo: ingresoRepo, categoriaRepo: categoriaRepo}
}

// CrearIngreso registra un ingreso. Un ingreso recurrente queda con la fecha
// del próximo cobro calculada a partir de la frecuencia.
func (uc *IngresoUseCase) CrearIngreso(userID string, in dto.CrearIngresoRequest) (*dto.IngresoResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tipo := entity.TipoIngreso(in.TipoIngresoID)
	if !tipo.Valido() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarCategoria(userID, in.CategoriaID); err != nil {
		return nil, err
	}
	now := time.Now()
	ingreso := &entity.Ingreso{
		ID:             uuid.New().String(),
		UserID:         userID,
		CategoriaID:    in.CategoriaID,
		TipoIngreso:    tipo,
		Fuente:         in.Fuente,
		Monto:          in.Monto,
		Fecha:          in.Fecha,
		Descripcion:    in.Descripcion,
		EsRecurrente:   in.EsRecurrente,
		FrecuenciaDias: in.FrecuenciaDias,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	ingreso.CalcularProximoIngreso()
	if err := uc.ingresoRepo.Create(ingreso); err != nil {
		return nil, err
	}
	return toIngresoResponse(ingreso), nil
}

// ListarIngresos ingresos del usuario en el período, más reciente primero.
// Sin fechas se usa el último año.
func (uc *IngresoUseCase) ListarIngresos(userID string, desde, hasta *time.Time, page dto.PageRequest) ([]*dto.IngresoResponse, error) {
	page.DefaultPage()
	d, h := rangoPorDefecto(desde, hasta)
	ingresos, err := uc.ingresoRepo.ListByUser(userID, d, h, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngresoResponse, 0, len(ingresos))
	for _, i := range ingresos {
		out = append(out, toIngresoResponse(i))
	}
	return out, nil
}

// TotalPeriodo suma de ingresos del usuario en el período.
func (uc *IngresoUseCase) TotalPeriodo(userID string, desde, hasta *time.Time) (decimal.Decimal, error) {
	d, h := rangoPorDefecto(desde, hasta)
	return uc.ingresoRepo.TotalPorPeriodo(userID, d, h)
}

// EliminarIngreso elimina un ingreso propio.
func (uc *IngresoUseCase) EliminarIngreso(userID, ingresoID string) error {
	ingreso, err := uc.ingresoRepo.GetByID(ingresoID)
	if err != nil {
		return err
	}
	if ingreso == nil {
		return domain.ErrNotFound
	}
	if ingreso.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.ingresoRepo.Delete(ingresoID)
}

// validarCategoria la categoría debe existir, ser global o del usuario, y
// admitir ingresos.
func (uc *IngresoUseCase) validarCategoria(userID, categoriaID string) error {
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
	if !cat.AplicaAIngreso() {
		return domain.ErrCategoriaInvalida
	}
	return nil
}

// rangoPorDefecto completa un rango abierto con el último año hasta hoy.
func rangoPorDefecto(desde, hasta *time.Time) (time.Time, time.Time) {
	now := time.Now()
	h := now
	if hasta != nil {
		h = *hasta
	}
	d := h.AddDate(-1, 0, 0)
	if desde != nil {
		d = *desde
	}
	return d, h
}

func toIngresoResponse(i *entity.Ingreso) *dto.IngresoResponse {
	if i == nil {
		return nil
	}
	return &dto.IngresoResponse{
		ID:             i.ID,
		CategoriaID:    i.CategoriaID,
		TipoIngresoID:  int(i.TipoIngreso),
		Fuente:         i.Fuente,
		Monto:          i.Monto,
		Fecha:          i.Fecha,
		Descripcion:    i.Descripcion,
		EsRecurrente:   i.EsRecurrente,
		FrecuenciaDias: i.FrecuenciaDias,
		ProximoIngreso: i.ProximoIngreso,
		CreatedAt:      i.CreatedAt,
	}
}
