package memstore

import (
	"context"

	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/application/partner"
	"github.com/jhoicas/consigna-api/internal/application/sales"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner      = (*Store)(nil)
	_ sales.SaleTxRunner      = (*Store)(nil)
	_ partner.PartnerTxRunner = (*Store)(nil)
)

// runTx toma una foto del estado antes del callback y la restaura si este
// falla: misma semántica todo-o-nada que el rollback de PostgreSQL.
func (s *Store) runTx(fn func() error) error {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Run(_ context.Context, fn func(
	items repository.StockItemRepository,
	batches repository.IntakeBatchRepository,
	logs repository.ActionLogRepository,
) error) error {
	return s.runTx(func() error { return fn(s.Items(), s.Batches(), s.ActionLogs()) })
}

func (s *Store) RunSale(_ context.Context, fn func(
	items repository.StockItemRepository,
	sales repository.SaleRepository,
	logs repository.ActionLogRepository,
) error) error {
	return s.runTx(func() error { return fn(s.Items(), s.Sales(), s.ActionLogs()) })
}

func (s *Store) RunPartner(_ context.Context, fn func(
	suppliers repository.SupplierRepository,
	batches repository.IntakeBatchRepository,
	logs repository.ActionLogRepository,
) error) error {
	return s.runTx(func() error { return fn(s.Suppliers(), s.Batches(), s.ActionLogs()) })
}
