package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/allocation"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el inventario: plan FIFO,
// vista agrupada por referencia+talla, búsqueda por scan code y estadísticas.
// Nunca muta estado ni falla parcialmente.
type StockQueryUseCase struct {
	itemRepo repository.StockItemRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(itemRepo repository.StockItemRepository) *StockQueryUseCase {
	return &StockQueryUseCase{itemRepo: itemRepo}
}

// PlanAllocation calcula el plan FIFO para una demanda sin comprometer stock.
// Dos llamadas sin commit intermedio devuelven el mismo plan.
func (uc *StockQueryUseCase) PlanAllocation(ctx context.Context, reference, size string, quantity int) (*dto.AllocationPlanResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if reference == "" || size == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListAvailableFIFO(reference, size)
	if err != nil {
		return nil, err
	}
	plan, err := allocation.Plan(allocation.FromItems(items), quantity)
	if err != nil {
		return nil, err
	}
	resp := &dto.AllocationPlanResponse{Total: decimal.Zero}
	for _, line := range plan {
		resp.Lines = append(resp.Lines, dto.AllocationLineResponse{
			StockItemID: line.ItemID,
			ScanCode:    line.ScanCode,
			BatchID:     line.BatchID,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
		resp.Total = resp.Total.Add(line.Total())
	}
	return resp, nil
}

// Overview devuelve el stock disponible agrupado por referencia + talla.
// Los filtros son de coincidencia exacta; vacío = todos.
func (uc *StockQueryUseCase) Overview(ctx context.Context, reference, size string) ([]dto.StockGroupResponse, error) {
	groups, err := uc.itemRepo.ListGroups(reference, size)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.StockGroupResponse{
			Reference:   g.Reference,
			Description: g.Description,
			Size:        g.Size,
			Available:   g.Available,
			Items:       g.Items,
		})
	}
	return out, nil
}

// FindByScanCode busca un ítem por su código de etiqueta.
func (uc *StockQueryUseCase) FindByScanCode(ctx context.Context, scanCode string) (*dto.StockItemResponse, error) {
	if scanCode == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByScanCode(scanCode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Stats devuelve las estadísticas generales del inventario en consignación.
func (uc *StockQueryUseCase) Stats(ctx context.Context) (*dto.StockStatsResponse, error) {
	stats, err := uc.itemRepo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.StockStatsResponse{
		ItemsInStock: stats.ItemsInStock,
		TotalUnits:   stats.TotalUnits,
		TotalValue:   stats.TotalValue,
	}, nil
}
