package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// IntakeUseCase gestiona el ciclo de vida de las notas de entrada: creación,
// alta de ítems mientras la nota está ACTIVE y cierre (FINALIZED).
type IntakeUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	batchRepo    repository.IntakeBatchRepository
	itemRepo     repository.StockItemRepository
}

// NewIntakeUseCase construye el caso de uso.
func NewIntakeUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	batchRepo repository.IntakeBatchRepository,
	itemRepo repository.StockItemRepository,
) *IntakeUseCase {
	return &IntakeUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		batchRepo:    batchRepo,
		itemRepo:     itemRepo,
	}
}

// CreateBatch abre una nota de entrada ACTIVE para un proveedor activo.
// El número de nota es único por proveedor (ErrDuplicate si se repite).
func (uc *IntakeUseCase) CreateBatch(ctx context.Context, in dto.CreateBatchRequest, actorID string) (*dto.BatchResponse, error) {
	if in.SupplierID == "" || in.BatchNumber == "" || in.IssueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.batchRepo.GetBySupplierAndNumber(in.SupplierID, in.BatchNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	batch := &entity.IntakeBatch{
		ID:           uuid.New().String(),
		BatchNumber:  in.BatchNumber,
		SupplierID:   in.SupplierID,
		IssueDate:    in.IssueDate,
		RegisteredAt: time.Now(),
		Status:       entity.BatchStatusActive,
		RegisteredBy: actorID,
		Notes:        in.Notes,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.StockItemRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		if err := batches.Create(batch); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionIntakeItem,
			Description:   fmt.Sprintf("Creación de nota de entrada %s - proveedor %s", batch.BatchNumber, supplier.Name),
			AffectedTable: "intake_batches",
			AffectedID:    batch.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// AddItem agrega un ítem a una nota ACTIVE. El scan code es único global
// (ErrDuplicate). El ítem nace con current_quantity = initial_quantity y
// status IN_STOCK.
func (uc *IntakeUseCase) AddItem(ctx context.Context, batchID string, in dto.AddItemRequest, actorID string) (*dto.StockItemResponse, error) {
	if in.ScanCode == "" || in.Reference == "" || in.Size == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.StockItem{
		ID:              uuid.New().String(),
		ScanCode:        in.ScanCode,
		BatchID:         batchID,
		Reference:       in.Reference,
		Description:     in.Description,
		Size:            in.Size,
		UnitPrice:       in.UnitPrice,
		InitialQuantity: in.Quantity,
		CurrentQuantity: in.Quantity,
		Status:          entity.ItemStatusInStock,
		CreatedAt:       time.Now(),
		RegisteredBy:    actorID,
	}
	err := uc.txRunner.Run(ctx, func(
		items repository.StockItemRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		batch, err := batches.GetByID(batchID)
		if err != nil {
			return err
		}
		if batch == nil || batch.Status != entity.BatchStatusActive {
			return domain.ErrNotFound
		}
		existing, err := items.GetByScanCode(in.ScanCode)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := items.Create(item); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionIntakeItem,
			Description:   fmt.Sprintf("Ítem agregado a la nota %s: %s (%d unidades)", batch.BatchNumber, in.Description, in.Quantity),
			AffectedTable: "stock_items",
			AffectedID:    item.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// FinalizeBatch cierra la nota: ya no admite ítems pero sigue referenciable
// para devoluciones. Falla si la nota no está ACTIVE o no tiene ítems.
func (uc *IntakeUseCase) FinalizeBatch(ctx context.Context, batchID, actorID string) error {
	return uc.txRunner.Run(ctx, func(
		items repository.StockItemRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		batch, err := batches.GetByID(batchID)
		if err != nil {
			return err
		}
		if batch == nil || batch.Status != entity.BatchStatusActive {
			return domain.ErrNotFound
		}
		count, err := items.CountByBatch(batchID)
		if err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrInvalidInput
		}
		if err := batches.UpdateStatus(batchID, entity.BatchStatusFinalized); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionIntakeItem,
			Description:   fmt.Sprintf("Finalización de nota de entrada %s", batch.BatchNumber),
			AffectedTable: "intake_batches",
			AffectedID:    batch.ID,
		})
	})
}

// GetBatch devuelve una nota por ID.
func (uc *IntakeUseCase) GetBatch(ctx context.Context, batchID string) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return toBatchResponse(batch), nil
}

// ListBatchItems lista los ítems de una nota.
func (uc *IntakeUseCase) ListBatchItems(ctx context.Context, batchID string) ([]dto.StockItemResponse, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// ListBatchesByPeriod lista notas por rango de emisión, opcionalmente por proveedor.
func (uc *IntakeUseCase) ListBatchesByPeriod(ctx context.Context, from, to time.Time, supplierID string) ([]dto.BatchResponse, error) {
	batches, err := uc.batchRepo.ListByPeriod(from, to, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, *toBatchResponse(b))
	}
	return out, nil
}

func toBatchResponse(b *entity.IntakeBatch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:           b.ID,
		BatchNumber:  b.BatchNumber,
		SupplierID:   b.SupplierID,
		IssueDate:    b.IssueDate,
		RegisteredAt: b.RegisteredAt,
		Status:       b.Status,
		Notes:        b.Notes,
	}
}

func toItemResponse(i *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:              i.ID,
		ScanCode:        i.ScanCode,
		BatchID:         i.BatchID,
		Reference:       i.Reference,
		Description:     i.Description,
		Size:            i.Size,
		UnitPrice:       i.UnitPrice,
		InitialQuantity: i.InitialQuantity,
		CurrentQuantity: i.CurrentQuantity,
		Status:          i.Status,
		CreatedAt:       i.CreatedAt,
	}
}
