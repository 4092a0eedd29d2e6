package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// ReporteFinanciero datos consolidados de un período para el PDF mensual.
type ReporteFinanciero struct {
	Usuario       *entity.User
	Periodo       string
	Desde         time.Time
	Hasta         time.Time
	TotalIngresos decimal.Decimal
	TotalGastos   decimal.Decimal
	Balance       decimal.Decimal
	PorCategoria  []repository.TotalCategoria
	Objetivos     []*entity.Objetivo
}

// ReportePDFGenerator genera el PDF del reporte financiero.
type ReportePDFGenerator interface {
	GenerarReporte(ctx context.Context, reporte *ReporteFinanciero) ([]byte, error)
}

// DashboardUseCase resumen financiero del usuario y reporte mensual en PDF.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	objetivoRepo  repository.ObjetivoRepository
	facturaRepo   repository.FacturaRepository
	gastoRepo     repository.GastoRepository
	userRepo      repository.UserRepository
	generator     ReportePDFGenerator
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	dashboardRepo repository.DashboardRepository,
	objetivoRepo repository.ObjetivoRepository,
	facturaRepo repository.FacturaRepository,
	gastoRepo repository.GastoRepository,
	userRepo repository.UserRepository,
	generator ReportePDFGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		objetivoRepo:  objetivoRepo,
		facturaRepo:   facturaRepo,
		gastoRepo:     gastoRepo,
		userRepo:      userRepo,
		generator:     generator,
	}
}

const transaccionesRecientesLimit = 10

// Resumen KPIs del período: totales, balance, objetivo principal, facturas
// por pagar y últimos movimientos. Períodos válidos: mes_actual, mes_anterior
// y anio_actual.
func (uc *DashboardUseCase) Resumen(ctx context.Context, userID, periodo string) (*dto.ResumenFinancieroResponse, error) {
	if periodo == "" {
		periodo = "mes_actual"
	}
	desde, hasta, err := rangoPeriodo(periodo, time.Now())
	if err != nil {
		return nil, err
	}
	ingresos, gastos, err := uc.dashboardRepo.GetTotalesPeriodo(ctx, userID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("dashboard: totales del período: %w", err)
	}

	res := &dto.ResumenFinancieroResponse{
		Periodo:       periodo,
		Desde:         desde,
		Hasta:         hasta,
		TotalIngresos: ingresos,
		TotalGastos:   gastos,
		Balance:       ingresos.Sub(gastos),
		MontoPorPagar: decimal.Zero,
	}

	// Objetivo de mayor prioridad; la lista viene ordenada por prioridad.
	objetivos, err := uc.objetivoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(objetivos) > 0 {
		res.ObjetivoPrincipal = toObjetivoResponse(objetivos[0])
	}

	now := time.Now()
	facturas, err := uc.facturaRepo.ListByUser(userID, nil)
	if err != nil {
		return nil, err
	}
	for _, f := range facturas {
		estado := f.EstadoEfectivo(now)
		if estado == entity.FacturaPendiente || estado == entity.FacturaVencida {
			res.FacturasPendientes++
			res.MontoPorPagar = res.MontoPorPagar.Add(f.Monto)
		}
	}

	recientes, err := uc.dashboardRepo.GetTransaccionesRecientes(ctx, userID, transaccionesRecientesLimit)
	if err != nil {
		return nil, err
	}
	res.TransaccionesRecientes = make([]dto.TransaccionResponse, 0, len(recientes))
	for _, t := range recientes {
		res.TransaccionesRecientes = append(res.TransaccionesRecientes, dto.TransaccionResponse{
			Tipo:      t.Tipo,
			Concepto:  t.Concepto,
			Categoria: t.Categoria,
			Monto:     t.Monto,
			Fecha:     t.Fecha,
		})
	}
	return res, nil
}

// ReporteMensualPDF genera el reporte financiero del período en PDF.
// Devuelve los bytes del documento y el nombre de archivo sugerido.
func (uc *DashboardUseCase) ReporteMensualPDF(ctx context.Context, userID, periodo string) ([]byte, string, error) {
	desde, hasta, err := rangoPeriodo(periodo, time.Now())
	if err != nil {
		return nil, "", err
	}
	usuario, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if usuario == nil {
		return nil, "", domain.ErrUserNotFound
	}
	ingresos, gastos, err := uc.dashboardRepo.GetTotalesPeriodo(ctx, userID, desde, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: totales del período: %w", err)
	}
	porCategoria, err := uc.gastoRepo.ResumenPorCategoria(userID, desde, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: resumen por categoría: %w", err)
	}
	objetivos, err := uc.objetivoRepo.ListByUser(userID)
	if err != nil {
		return nil, "", err
	}

	reporte := &ReporteFinanciero{
		Usuario:       usuario,
		Periodo:       periodo,
		Desde:         desde,
		Hasta:         hasta,
		TotalIngresos: ingresos,
		TotalGastos:   gastos,
		Balance:       ingresos.Sub(gastos),
		PorCategoria:  porCategoria,
		Objetivos:     objetivos,
	}
	pdfBytes, err := uc.generator.GenerarReporte(ctx, reporte)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("reporte_%s_%s.pdf", periodo, desde.Format("2006_01"))
	return pdfBytes, filename, nil
}

// rangoPeriodo traduce el código de período a un rango [desde, hasta].
func rangoPeriodo(periodo string, ahora time.Time) (time.Time, time.Time, error) {
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	switch periodo {
	case "", "mes_actual":
		return inicioMes, ahora, nil
	case "mes_anterior":
		inicioAnterior := inicioMes.AddDate(0, -1, 0)
		return inicioAnterior, inicioMes.Add(-time.Second), nil
	case "anio_actual":
		inicioAnio := time.Date(ahora.Year(), 1, 1, 0, 0, 0, 0, ahora.Location())
		return inicioAnio, ahora, nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}
