package returns_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/returns"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/infrastructure/memstore"
)

const testActor = "00000000-0000-0000-0000-000000000001"

func newReturnUC(t *testing.T) (*returns.ReturnUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedSupplier(&entity.Supplier{ID: "sup-1", Name: "Ateliê Ana", CNPJ: "11222333000181", Active: true})
	store.SeedBatch(&entity.IntakeBatch{
		ID: "batch-1", BatchNumber: "N-001", SupplierID: "sup-1",
		IssueDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:    entity.BatchStatusFinalized,
	})
	store.SeedBatch(&entity.IntakeBatch{
		ID: "batch-open", BatchNumber: "N-002", SupplierID: "sup-1",
		IssueDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:    entity.BatchStatusActive,
	})
	store.SeedItem(&entity.StockItem{
		ID: "item-1", ScanCode: "A-001", BatchID: "batch-1",
		Reference: "VEST-01", Description: "Vestido floral", Size: "M",
		UnitPrice: decimal.NewFromFloat(10.50), InitialQuantity: 5, CurrentQuantity: 5,
		Status: entity.ItemStatusInStock,
	})
	store.SeedItem(&entity.StockItem{
		ID: "item-2", ScanCode: "A-002", BatchID: "batch-1",
		Reference: "SAIA-02", Description: "Saia midi", Size: "P",
		UnitPrice: decimal.NewFromFloat(8.00), InitialQuantity: 3, CurrentQuantity: 3,
		Status: entity.ItemStatusInStock,
	})
	return returns.NewReturnUseCase(store, store.Batches(), store.Items()), store
}

func TestProcessReturn_Parcial(t *testing.T) {
	uc, store := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{{StockItemID: "item-1", Quantity: 2}},
	}, testActor)
	require.NoError(t, err)

	it := store.Item("item-1")
	assert.Equal(t, 3, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, it.Status)
}

func TestProcessReturn_AgotarMarcaReturned(t *testing.T) {
	uc, store := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{{StockItemID: "item-1", Quantity: 5}},
	}, testActor)
	require.NoError(t, err)

	it := store.Item("item-1")
	assert.Equal(t, 0, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusReturned, it.Status)

	// item-2 sigue en stock: la nota no cambia de estado.
	assert.Equal(t, entity.BatchStatusFinalized, store.Batch("batch-1").Status)
}

func TestProcessReturn_NotaCompletaQuedaReturned(t *testing.T) {
	uc, store := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{
			{StockItemID: "item-1", Quantity: 5},
			{StockItemID: "item-2", Quantity: 3},
		},
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, entity.ItemStatusReturned, store.Item("item-1").Status)
	assert.Equal(t, entity.ItemStatusReturned, store.Item("item-2").Status)
	assert.Equal(t, entity.BatchStatusReturned, store.Batch("batch-1").Status)
}

func TestProcessReturn_ExcedeDisponible(t *testing.T) {
	uc, store := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{{StockItemID: "item-1", Quantity: 6}},
	}, testActor)
	assert.ErrorIs(t, err, domain.ErrExceedsAvailable)
	// Estado intacto.
	assert.Equal(t, 5, store.Item("item-1").CurrentQuantity)
}

func TestProcessReturn_MultiLineaTodoONada(t *testing.T) {
	uc, store := newReturnUC(t)
	// La segunda línea excede: la primera tampoco debe aplicarse.
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{
			{StockItemID: "item-1", Quantity: 2},
			{StockItemID: "item-2", Quantity: 4},
		},
	}, testActor)
	assert.ErrorIs(t, err, domain.ErrExceedsAvailable)
	assert.Equal(t, 5, store.Item("item-1").CurrentQuantity)
	assert.Equal(t, 3, store.Item("item-2").CurrentQuantity)
	assert.Empty(t, store.Logs())
}

func TestProcessReturn_ItemInexistente(t *testing.T) {
	uc, _ := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{{StockItemID: "no-existe", Quantity: 1}},
	}, testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessReturn_SinLineas(t *testing.T) {
	uc, _ := newReturnUC(t)
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{}, testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListReturnableBatches_SoloFinalizadasConStock(t *testing.T) {
	uc, _ := newReturnUC(t)
	batches, err := uc.ListReturnableBatches(context.Background(), "sup-1")
	require.NoError(t, err)
	// batch-open está ACTIVE: no es candidata.
	require.Len(t, batches, 1)
	assert.Equal(t, "batch-1", batches[0].ID)
}

func TestListReturnableBatches_SinStockDesaparece(t *testing.T) {
	uc, _ := newReturnUC(t)
	// Devolver todo el stock de la nota la saca de la lista.
	err := uc.ProcessReturn(context.Background(), dto.ProcessReturnRequest{
		Lines: []dto.ReturnLineRequest{
			{StockItemID: "item-1", Quantity: 5},
			{StockItemID: "item-2", Quantity: 3},
		},
	}, testActor)
	require.NoError(t, err)

	batches, err := uc.ListReturnableBatches(context.Background(), "sup-1")
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestListReturnableItems_NotaActiva(t *testing.T) {
	uc, _ := newReturnUC(t)
	_, err := uc.ListReturnableItems(context.Background(), "batch-open")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListReturnableItems(t *testing.T) {
	uc, _ := newReturnUC(t)
	items, err := uc.ListReturnableItems(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
