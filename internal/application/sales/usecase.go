package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/allocation"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// SaleUseCase orquesta el ciclo de vida de una venta: abrir, agregar líneas
// vía asignación FIFO, cerrar con forma de pago y cancelar con estorno.
// Toda mutación de stock pasa por el libro de inventario dentro de una
// transacción; ninguna operación deja estado a medias.
type SaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
	itemRepo repository.StockItemRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository, itemRepo repository.StockItemRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, itemRepo: itemRepo}
}

// StartSale abre una venta con total 0 y sin forma de pago.
func (uc *SaleUseCase) StartSale(ctx context.Context, in dto.StartSaleRequest, operatorID string) (*dto.SaleResponse, error) {
	if in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		OccurredAt:    time.Now(),
		OperatorID:    operatorID,
		CustomerName:  in.CustomerName,
		CustomerTaxID: in.CustomerTaxID,
		Total:         decimal.Zero,
		Status:        entity.SaleStatusFinalized,
		Notes:         in.Notes,
	}
	err := uc.txRunner.RunSale(ctx, func(
		_ repository.StockItemRepository,
		sales repository.SaleRepository,
		logs repository.ActionLogRepository,
	) error {
		if err := sales.Create(sale); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       operatorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionSale,
			Description:   fmt.Sprintf("Inicio de venta para cliente: %s", in.CustomerName),
			AffectedTable: "sales",
			AffectedID:    sale.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, nil), nil
}

// AddLine agrega una demanda (referencia, talla, cantidad) a la venta.
// Dentro de una sola transacción: bloquea los candidatos FIFO, calcula el
// plan, lo aplica sobre el libro (descuento + log por ítem), crea una línea
// por ítem asignado y recalcula el total desde cero. Si el stock no alcanza
// devuelve ErrInsufficientStock sin ningún cambio de estado.
func (uc *SaleUseCase) AddLine(ctx context.Context, saleID string, in dto.AddLineRequest, actorID string) ([]dto.SaleLineResponse, error) {
	if in.Reference == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var created []dto.SaleLineResponse
	err := uc.txRunner.RunSale(ctx, func(
		items repository.StockItemRepository,
		sales repository.SaleRepository,
		logs repository.ActionLogRepository,
	) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled || sale.Closed() {
			return domain.ErrConflict
		}

		// Candidatos bloqueados (FOR UPDATE): el plan se calcula sobre filas
		// serializadas, dos terminales no pueden asignar las mismas unidades.
		candidates, err := items.ListAvailableFIFOForUpdate(in.Reference, in.Size)
		if err != nil {
			return err
		}
		plan, err := allocation.Plan(allocation.FromItems(candidates), in.Quantity)
		if err != nil {
			return err
		}
		if err := inventory.CommitAllocation(items, logs, plan, actorID); err != nil {
			return err
		}
		for _, l := range plan {
			line := &entity.SaleLine{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				StockItemID: l.ItemID,
				BatchID:     l.BatchID,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			}
			if err := sales.CreateLine(line); err != nil {
				return err
			}
			created = append(created, toLineResponse(line))
		}

		// Total siempre desde las líneas persistidas; así no hay deriva por
		// acumulación incremental.
		total, err := sales.SumLines(saleID)
		if err != nil {
			return err
		}
		return sales.UpdateTotal(saleID, total)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FinalizeSale cierra la venta registrando la forma de pago. Falla si la
// venta no existe, está cancelada, no tiene líneas o la forma es inválida.
// Cerrada la venta, sus líneas quedan inmutables.
func (uc *SaleUseCase) FinalizeSale(ctx context.Context, saleID, paymentMethod, actorID string) error {
	if !entity.ValidPaymentMethod(paymentMethod) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunSale(ctx, func(
		_ repository.StockItemRepository,
		sales repository.SaleRepository,
		logs repository.ActionLogRepository,
	) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled || sale.Closed() {
			return domain.ErrConflict
		}
		lines, err := sales.ListLines(saleID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput
		}
		if err := sales.UpdatePayment(saleID, paymentMethod); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionSale,
			Description:   fmt.Sprintf("Finalización de venta - total %s (%s)", sale.Total.StringFixed(2), paymentMethod),
			AffectedTable: "sales",
			AffectedID:    saleID,
		})
	})
}

// CancelSale estorna todas las líneas al inventario (cada ítem vuelve a
// IN_STOCK con su cantidad repuesta) y marca la venta CANCELLED. Se permite
// sobre ventas ya cerradas, sin límite de tiempo; cancelar dos veces es
// ErrConflict.
func (uc *SaleUseCase) CancelSale(ctx context.Context, saleID, actorID string) error {
	return uc.txRunner.RunSale(ctx, func(
		items repository.StockItemRepository,
		sales repository.SaleRepository,
		logs repository.ActionLogRepository,
	) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == entity.SaleStatusCancelled {
			return domain.ErrConflict
		}
		lines, err := sales.ListLines(saleID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := inventory.RestoreQuantity(items, logs, line.StockItemID, line.Quantity, actorID); err != nil {
				return err
			}
		}
		if err := sales.UpdateStatus(saleID, entity.SaleStatusCancelled); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionSale,
			Description:   fmt.Sprintf("Cancelación de venta %s", saleID),
			AffectedTable: "sales",
			AffectedID:    saleID,
		})
	})
}

// GetSale devuelve la venta con sus líneas.
func (uc *SaleUseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.ListLines(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

func toSaleResponse(s *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		OccurredAt:    s.OccurredAt,
		OperatorID:    s.OperatorID,
		CustomerName:  s.CustomerName,
		CustomerTaxID: s.CustomerTaxID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
	}
	return resp
}

func toLineResponse(l *entity.SaleLine) dto.SaleLineResponse {
	return dto.SaleLineResponse{
		ID:          l.ID,
		StockItemID: l.StockItemID,
		BatchID:     l.BatchID,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Total:       l.Total(),
	}
}
