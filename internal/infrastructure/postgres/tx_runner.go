package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/application/partner"
	"github.com/jhoicas/consigna-api/internal/application/sales"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de cada contexto.
var (
	_ inventory.TxRunner      = (*TxRunner)(nil)
	_ sales.SaleTxRunner      = (*TxRunner)(nil)
	_ partner.PartnerTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL: abre la
// tx, entrega repositorios atados a ella y hace Commit si el callback
// devuelve nil o Rollback en caso contrario. Es la unidad todo-o-nada de todo
// el motor: mutaciones y entradas de log se aplican juntas o no se aplica
// nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repositorios del libro de inventario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.StockItemRepository,
	batches repository.IntakeBatchRepository,
	logs repository.ActionLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewIntakeBatchRepository(tx), NewActionLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repositorios del gestor de ventas.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	items repository.StockItemRepository,
	sales repository.SaleRepository,
	logs repository.ActionLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewSaleRepository(tx), NewActionLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPartner inicia una transacción con los repositorios de proveedores.
func (r *TxRunner) RunPartner(ctx context.Context, fn func(
	suppliers repository.SupplierRepository,
	batches repository.IntakeBatchRepository,
	logs repository.ActionLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSupplierRepository(tx), NewIntakeBatchRepository(tx), NewActionLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
