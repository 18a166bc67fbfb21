package returns

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// ReturnUseCase gestiona devoluciones al proveedor: mercancía en consignación
// que vuelve a su dueño. Es la inversa de la venta sobre el libro de
// inventario; el ítem queda RETURNED al agotarse.
type ReturnUseCase struct {
	txRunner  inventory.TxRunner
	batchRepo repository.IntakeBatchRepository
	itemRepo  repository.StockItemRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(txRunner inventory.TxRunner, batchRepo repository.IntakeBatchRepository, itemRepo repository.StockItemRepository) *ReturnUseCase {
	return &ReturnUseCase{txRunner: txRunner, batchRepo: batchRepo, itemRepo: itemRepo}
}

// ListReturnableBatches lista las notas FINALIZED del proveedor que todavía
// tienen ítems en stock.
func (uc *ReturnUseCase) ListReturnableBatches(ctx context.Context, supplierID string) ([]dto.BatchResponse, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	batches, err := uc.batchRepo.ListReturnable(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.BatchResponse{
			ID:           b.ID,
			BatchNumber:  b.BatchNumber,
			SupplierID:   b.SupplierID,
			IssueDate:    b.IssueDate,
			RegisteredAt: b.RegisteredAt,
			Status:       b.Status,
			Notes:        b.Notes,
		})
	}
	return out, nil
}

// ListReturnableItems lista los ítems IN_STOCK con cantidad > 0 de una nota
// FINALIZED.
func (uc *ReturnUseCase) ListReturnableItems(ctx context.Context, batchID string) ([]dto.StockItemResponse, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil || batch.Status != entity.BatchStatusFinalized {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListReturnable(batchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemResponse{
			ID:              it.ID,
			ScanCode:        it.ScanCode,
			BatchID:         it.BatchID,
			Reference:       it.Reference,
			Description:     it.Description,
			Size:            it.Size,
			UnitPrice:       it.UnitPrice,
			InitialQuantity: it.InitialQuantity,
			CurrentQuantity: it.CurrentQuantity,
			Status:          it.Status,
			CreatedAt:       it.CreatedAt,
		})
	}
	return out, nil
}

// ProcessReturn descuenta unidades devueltas al proveedor, ítem por ítem, en
// una sola transacción. Cualquier línea inválida (ítem inexistente o fuera de
// stock → ErrNotFound; cantidad mayor a la disponible → ErrExceedsAvailable)
// aborta la devolución completa sin persistir nada.
func (uc *ReturnUseCase) ProcessReturn(ctx context.Context, in dto.ProcessReturnRequest, actorID string) error {
	if len(in.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.StockItemID == "" || line.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return uc.txRunner.Run(ctx, func(
		items repository.StockItemRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		affected := map[string]struct{}{}
		for _, line := range in.Lines {
			item, err := items.GetByIDForUpdate(line.StockItemID)
			if err != nil {
				return err
			}
			if item == nil || item.Status != entity.ItemStatusInStock {
				return domain.ErrNotFound
			}
			if err := item.Remove(line.Quantity); err != nil {
				return err
			}
			if err := items.UpdateQuantityStatus(item); err != nil {
				return err
			}
			affected[item.BatchID] = struct{}{}
			err = logs.Create(&entity.ActionLogEntry{
				ActorID:       actorID,
				OccurredAt:    time.Now(),
				Kind:          entity.ActionReturn,
				Description:   fmt.Sprintf("Devolución de %d unidades del ítem %s", line.Quantity, item.ScanCode),
				AffectedTable: "stock_items",
				AffectedID:    item.ID,
			})
			if err != nil {
				return err
			}
		}
		// Una nota sin stock restante queda RETURNED: toda la mercancía
		// volvió al proveedor.
		for batchID := range affected {
			remaining, err := items.ListReturnable(batchID)
			if err != nil {
				return err
			}
			if len(remaining) == 0 {
				if err := batches.UpdateStatus(batchID, entity.BatchStatusReturned); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
