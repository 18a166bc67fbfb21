package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/infrastructure/memstore"
)

func newStockUC(t *testing.T) (*inventory.StockQueryUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedBatch(&entity.IntakeBatch{
		ID: "batch-old", BatchNumber: "N-001", SupplierID: "sup-1",
		IssueDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:    entity.BatchStatusFinalized,
	})
	store.SeedBatch(&entity.IntakeBatch{
		ID: "batch-new", BatchNumber: "N-002", SupplierID: "sup-1",
		IssueDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:    entity.BatchStatusFinalized,
	})
	store.SeedItem(&entity.StockItem{
		ID: "item-old", ScanCode: "A-001", BatchID: "batch-old",
		Reference: "VEST-01", Description: "Vestido floral", Size: "M",
		UnitPrice: decimal.NewFromFloat(10.50), InitialQuantity: 5, CurrentQuantity: 5,
		Status: entity.ItemStatusInStock, CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	})
	store.SeedItem(&entity.StockItem{
		ID: "item-new", ScanCode: "A-002", BatchID: "batch-new",
		Reference: "VEST-01", Description: "Vestido floral", Size: "M",
		UnitPrice: decimal.NewFromFloat(12.00), InitialQuantity: 5, CurrentQuantity: 5,
		Status: entity.ItemStatusInStock, CreatedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	})
	store.SeedItem(&entity.StockItem{
		ID: "item-other", ScanCode: "B-001", BatchID: "batch-new",
		Reference: "SAIA-02", Description: "Saia midi", Size: "P",
		UnitPrice: decimal.NewFromFloat(8.00), InitialQuantity: 2, CurrentQuantity: 2,
		Status: entity.ItemStatusInStock, CreatedAt: time.Date(2026, 2, 10, 9, 5, 0, 0, time.UTC),
	})
	return inventory.NewStockQueryUseCase(store.Items()), store
}

func TestPlanAllocation_OrdenFIFO(t *testing.T) {
	uc, _ := newStockUC(t)
	plan, err := uc.PlanAllocation(context.Background(), "VEST-01", "M", 7)
	require.NoError(t, err)
	require.Len(t, plan.Lines, 2)
	assert.Equal(t, "item-old", plan.Lines[0].StockItemID)
	assert.Equal(t, 5, plan.Lines[0].Quantity)
	assert.Equal(t, "item-new", plan.Lines[1].StockItemID)
	assert.Equal(t, 2, plan.Lines[1].Quantity)
	assert.True(t, plan.Total.Equal(decimal.NewFromFloat(76.50)), "total %s", plan.Total)
}

func TestPlanAllocation_NoComprometeStock(t *testing.T) {
	uc, store := newStockUC(t)
	first, err := uc.PlanAllocation(context.Background(), "VEST-01", "M", 7)
	require.NoError(t, err)
	second, err := uc.PlanAllocation(context.Background(), "VEST-01", "M", 7)
	require.NoError(t, err)
	// Mismo plan dos veces: la consulta no descuenta nada.
	assert.Equal(t, first, second)
	assert.Equal(t, 5, store.Item("item-old").CurrentQuantity)
}

func TestPlanAllocation_Insuficiente(t *testing.T) {
	uc, _ := newStockUC(t)
	_, err := uc.PlanAllocation(context.Background(), "VEST-01", "M", 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestPlanAllocation_TallaDistintaNoEsFungible(t *testing.T) {
	uc, _ := newStockUC(t)
	// Hay VEST-01 en M pero no en G: la talla es parte de la clave.
	_, err := uc.PlanAllocation(context.Background(), "VEST-01", "G", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestOverview_AgrupaPorReferenciaYTalla(t *testing.T) {
	uc, _ := newStockUC(t)
	groups, err := uc.Overview(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	// Orden por referencia.
	assert.Equal(t, "SAIA-02", groups[0].Reference)
	assert.Equal(t, 2, groups[0].Available)
	assert.Equal(t, "VEST-01", groups[1].Reference)
	assert.Equal(t, 10, groups[1].Available)
	assert.Equal(t, 2, groups[1].Items)
}

func TestOverview_FiltroExacto(t *testing.T) {
	uc, _ := newStockUC(t)
	groups, err := uc.Overview(context.Background(), "VEST-01", "M")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "VEST-01", groups[0].Reference)
}

func TestFindByScanCode(t *testing.T) {
	uc, _ := newStockUC(t)
	item, err := uc.FindByScanCode(context.Background(), "B-001")
	require.NoError(t, err)
	assert.Equal(t, "item-other", item.ID)

	_, err = uc.FindByScanCode(context.Background(), "Z-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats(t *testing.T) {
	uc, _ := newStockUC(t)
	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ItemsInStock)
	assert.Equal(t, 12, stats.TotalUnits)
	// 5*10.50 + 5*12.00 + 2*8.00 = 128.50
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromFloat(128.50)), "valor %s", stats.TotalValue)
}
