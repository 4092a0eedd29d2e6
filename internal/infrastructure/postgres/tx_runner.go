package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// Ensure TxRunner implements the usecase tx ports.
var _ usecase.ObjetivoTxRunner = (*TxRunner)(nil)
var _ usecase.PlanTxRunner = (*TxRunner)(nil)
var _ usecase.VentaTxRunner = (*TxRunner)(nil)
var _ usecase.ProyectoTxRunner = (*TxRunner)(nil)
var _ usecase.TareaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunObjetivo inicia una transacción con el repo de objetivos atado a la tx.
// Lo usan los aportes y retiros: saldo y movimiento del historial en un solo commit.
func (r *TxRunner) RunObjetivo(ctx context.Context, fn func(objRepo repository.ObjetivoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewObjetivoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPlan inicia una transacción con repos de gastos planificados y gastos
// (para ejecutar un plan: crear el gasto real y marcar el plan en un solo commit).
func (r *TxRunner) RunPlan(ctx context.Context, fn func(
	planRepo repository.GastoPlanificadoRepository,
	gastoRepo repository.GastoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewGastoPlanificadoRepository(tx), NewGastoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenta inicia una transacción con repos de productos y ventas
// (descuento de stock condicional + inserción de la venta).
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductoRepository(tx), NewVentaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProyecto inicia una transacción con el repo de proyectos atado a la tx
// (mutación de metas + recálculo de progreso atómicos).
func (r *TxRunner) RunProyecto(ctx context.Context, fn func(proyectoRepo repository.ProyectoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProyectoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTarea inicia una transacción con el repo de tareas atado a la tx
// (cambio de estado + registro de historial en un solo commit).
func (r *TxRunner) RunTarea(ctx context.Context, fn func(tareaRepo repository.TareaRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTareaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
