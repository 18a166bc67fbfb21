package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/allocation"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// CommitAllocation aplica un plan FIFO sobre el libro de inventario usando los
// repositorios de la transacción del caller (misma tx que la venta que lo
// origina). Por cada línea: relee el ítem con bloqueo de fila, re-valida la
// cantidad disponible (el plan pudo calcularse sobre una lectura obsoleta),
// descuenta, marca SOLD al llegar a cero y escribe una entrada de log.
// Cualquier fallo aborta la transacción completa del caller.
func CommitAllocation(
	items repository.StockItemRepository,
	logs repository.ActionLogRepository,
	plan []allocation.Line,
	actorID string,
) error {
	for _, line := range plan {
		item, err := items.GetByIDForUpdate(line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := item.Take(line.Quantity); err != nil {
			return err
		}
		if err := items.UpdateQuantityStatus(item); err != nil {
			return err
		}
		err = logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionSale,
			Description:   fmt.Sprintf("Venta de %d unidades del ítem %s", line.Quantity, item.ScanCode),
			AffectedTable: "stock_items",
			AffectedID:    item.ID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// RestoreQuantity repone unidades de un ítem por cancelación de venta y lo
// devuelve a IN_STOCK. Mismo contrato transaccional que CommitAllocation.
func RestoreQuantity(
	items repository.StockItemRepository,
	logs repository.ActionLogRepository,
	itemID string,
	qty int,
	actorID string,
) error {
	item, err := items.GetByIDForUpdate(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := item.Restore(qty); err != nil {
		return err
	}
	if err := items.UpdateQuantityStatus(item); err != nil {
		return err
	}
	return logs.Create(&entity.ActionLogEntry{
		ActorID:       actorID,
		OccurredAt:    time.Now(),
		Kind:          entity.ActionSale,
		Description:   fmt.Sprintf("Estorno de %d unidades del ítem %s por cancelación", qty, item.ScanCode),
		AffectedTable: "stock_items",
		AffectedID:    item.ID,
	})
}
