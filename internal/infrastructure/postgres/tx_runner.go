package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// Ensure TxRunner implements inventario.TxRunner and finanzas.TxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ finanzas.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del circuito de stock y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoStockRepository,
	prestamoRepo repository.PrestamoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insumoRepo := NewInsumoRepository(tx)
	movRepo := NewMovimientoStockRepository(tx)
	prestamoRepo := NewPrestamoRepository(tx)

	if err := fn(insumoRepo, movRepo, prestamoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFinanzas inicia una transacción con los repos de órdenes y movimientos
// financieros (para el cierre de orden con su movimiento).
func (r *TxRunner) RunFinanzas(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ordenRepo := NewOrdenRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(ordenRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
