package usecase

import (
	"context"

	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// ObjetivoTxRunner ejecuta una función dentro de una transacción de BD con el
// repo de objetivos atado a esa tx. Garantiza que saldo y movimiento del
// historial se confirmen juntos.
type ObjetivoTxRunner interface {
	RunObjetivo(ctx context.Context, fn func(objRepo repository.ObjetivoRepository) error) error
}

// PlanTxRunner transacción para ejecutar un gasto planificado: el gasto real
// y la transición del plan se confirman juntos.
type PlanTxRunner interface {
	RunPlan(ctx context.Context, fn func(
		planRepo repository.GastoPlanificadoRepository,
		gastoRepo repository.GastoRepository,
	) error) error
}

// VentaTxRunner transacción para registrar una venta: descuento de stock
// condicional e inserción de la venta atómicos.
type VentaTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}

// ProyectoTxRunner transacción para mutaciones de metas con recálculo de
// progreso atómico.
type ProyectoTxRunner interface {
	RunProyecto(ctx context.Context, fn func(proyectoRepo repository.ProyectoRepository) error) error
}

// TareaTxRunner transacción para cambios de estado de tarea con registro de
// historial atómico.
type TareaTxRunner interface {
	RunTarea(ctx context.Context, fn func(tareaRepo repository.TareaRepository) error) error
}
