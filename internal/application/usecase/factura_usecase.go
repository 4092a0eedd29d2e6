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

// FacturaUseCase casos de uso de facturas por pagar. El vencimiento es
// perezoso: la transición Pendiente a Vencida se detecta y persiste al
// consultar, no con un proceso de fondo.
type FacturaUseCase struct {
	facturaRepo repository.FacturaRepository
}

// NewFacturaUseCase construye el caso de uso de facturas.
func NewFacturaUseCase(facturaRepo repository.FacturaRepository) *FacturaUseCase {
	return &FacturaUseCase{facturaRepo: facturaRepo}
}

// CrearFactura registra una factura por pagar en estado Pendiente.
func (uc *FacturaUseCase) CrearFactura(userID string, in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tipo := entity.TipoFactura(in.TipoFacturaID)
	if !tipo.Valido() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	f := &entity.Factura{
		ID:               uuid.New().String(),
		UserID:           userID,
		Nombre:           in.Nombre,
		TipoFactura:      tipo,
		Monto:            in.Monto,
		FechaVencimiento: in.FechaVencimiento,
		Estado:           entity.FacturaPendiente,
		EsRecurrente:     in.EsRecurrente,
		FrecuenciaDias:   in.FrecuenciaDias,
		Notas:            in.Notas,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.facturaRepo.Create(f); err != nil {
		return nil, err
	}
	return toFacturaResponse(f, now), nil
}

// ListarFacturas facturas del usuario con filtro opcional por código de
// estado. Las pendientes con fecha pasada se marcan Vencida y la transición
// se persiste antes de responder.
func (uc *FacturaUseCase) ListarFacturas(userID, estadoCodigo string) ([]*dto.FacturaResponse, error) {
	var filtro *entity.EstadoFactura
	if estadoCodigo != "" {
		estado, ok := estadoFacturaDesdeCodigo(estadoCodigo)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		filtro = &estado
	}
	now := time.Now()

	// Para el filtro "vencida" hay que partir de las pendientes: las vencidas
	// sin persistir siguen guardadas como Pendiente.
	consulta := filtro
	if filtro != nil && *filtro == entity.FacturaVencida {
		consulta = nil
	}
	facturas, err := uc.facturaRepo.ListByUser(userID, consulta)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		if f.EstaVencida(now) {
			f.Estado = entity.FacturaVencida
			f.UpdatedAt = now
			if err := uc.facturaRepo.Update(f); err != nil {
				return nil, err
			}
		}
		if filtro != nil && f.Estado != *filtro {
			continue
		}
		out = append(out, toFacturaResponse(f, now))
	}
	return out, nil
}

// MarcarPagada marca la factura como pagada con fecha de pago. Pagar una ya
// pagada es idempotente. Una recurrente avanza su vencimiento y vuelve a
// Pendiente para el siguiente ciclo.
func (uc *FacturaUseCase) MarcarPagada(userID, facturaID string) (*dto.FacturaResponse, error) {
	f, err := uc.factura(userID, facturaID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if f.Estado == entity.FacturaPagada {
		return toFacturaResponse(f, now), nil
	}
	f.Estado = entity.FacturaPagada
	f.UltimoPago = &now
	if f.EsRecurrente {
		f.AvanzarVencimiento()
	}
	f.UpdatedAt = now
	if err := uc.facturaRepo.Update(f); err != nil {
		return nil, err
	}
	return toFacturaResponse(f, now), nil
}

// Resumen agregado de facturas del usuario con la próxima a vencer.
func (uc *FacturaUseCase) Resumen(userID string) (*dto.ResumenFacturasResponse, error) {
	facturas, err := uc.facturaRepo.ListByUser(userID, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	res := &dto.ResumenFacturasResponse{MontoPendiente: decimal.Zero}
	var proxima *entity.Factura
	for _, f := range facturas {
		switch f.EstadoEfectivo(now) {
		case entity.FacturaPendiente:
			res.Pendientes++
			res.MontoPendiente = res.MontoPendiente.Add(f.Monto)
			if proxima == nil || f.FechaVencimiento.Before(proxima.FechaVencimiento) {
				proxima = f
			}
		case entity.FacturaVencida:
			res.Vencidas++
			res.MontoPendiente = res.MontoPendiente.Add(f.Monto)
		case entity.FacturaPagada:
			res.Pagadas++
		}
	}
	if proxima != nil {
		res.ProximaAVencer = toFacturaResponse(proxima, now)
	}
	return res, nil
}

// EliminarFactura elimina una factura propia.
func (uc *FacturaUseCase) EliminarFactura(userID, facturaID string) error {
	if _, err := uc.factura(userID, facturaID); err != nil {
		return err
	}
	return uc.facturaRepo.Delete(facturaID)
}

func (uc *FacturaUseCase) factura(userID, facturaID string) (*entity.Factura, error) {
	f, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return f, nil
}

func estadoFacturaDesdeCodigo(codigo string) (entity.EstadoFactura, bool) {
	switch codigo {
	case "pendiente":
		return entity.FacturaPendiente, true
	case "pagada":
		return entity.FacturaPagada, true
	case "vencida":
		return entity.FacturaVencida, true
	default:
		return 0, false
	}
}

func toFacturaResponse(f *entity.Factura, ahora time.Time) *dto.FacturaResponse {
	if f == nil {
		return nil
	}
	return &dto.FacturaResponse{
		ID:                  f.ID,
		Nombre:              f.Nombre,
		TipoFacturaID:       int(f.TipoFactura),
		Monto:               f.Monto,
		FechaVencimiento:    f.FechaVencimiento,
		Estado:              f.EstadoEfectivo(ahora).Codigo(),
		DiasParaVencimiento: f.DiasParaVencimiento(ahora),
		UltimoPago:          f.UltimoPago,
		EsRecurrente:        f.EsRecurrente,
		FrecuenciaDias:      f.FrecuenciaDias,
		Notas:               f.Notas,
		CreatedAt:           f.CreatedAt,
	}
}
