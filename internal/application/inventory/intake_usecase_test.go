package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/infrastructure/memstore"
)

const testActor = "00000000-0000-0000-0000-000000000001"

func newIntakeUC(t *testing.T) (*inventory.IntakeUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedSupplier(&entity.Supplier{ID: "sup-1", Name: "Ateliê Ana", CNPJ: "11222333000181", Active: true})
	store.SeedSupplier(&entity.Supplier{ID: "sup-off", Name: "Cerrado", CNPJ: "11444777000161", Active: false})
	return inventory.NewIntakeUseCase(store, store.Suppliers(), store.Batches(), store.Items()), store
}

func validBatchReq() dto.CreateBatchRequest {
	return dto.CreateBatchRequest{
		SupplierID:  "sup-1",
		BatchNumber: "N-001",
		IssueDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validItemReq() dto.AddItemRequest {
	return dto.AddItemRequest{
		ScanCode:    "A-001",
		Reference:   "VEST-01",
		Description: "Vestido floral",
		Size:        "M",
		UnitPrice:   decimal.NewFromFloat(10.50),
		Quantity:    5,
	}
}

func TestCreateBatch(t *testing.T) {
	uc, _ := newIntakeUC(t)
	resp, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	assert.Equal(t, entity.BatchStatusActive, resp.Status)
	assert.Equal(t, "N-001", resp.BatchNumber)
}

func TestCreateBatch_ProveedorInactivo(t *testing.T) {
	uc, _ := newIntakeUC(t)
	req := validBatchReq()
	req.SupplierID = "sup-off"
	_, err := uc.CreateBatch(context.Background(), req, testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBatch_NumeroDuplicadoPorProveedor(t *testing.T) {
	uc, _ := newIntakeUC(t)
	_, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	_, err = uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddItem(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	require.NoError(t, err)
	// Nace con toda la cantidad disponible.
	assert.Equal(t, 5, item.InitialQuantity)
	assert.Equal(t, 5, item.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, item.Status)
}

func TestAddItem_NotaInexistente(t *testing.T) {
	uc, _ := newIntakeUC(t)
	_, err := uc.AddItem(context.Background(), "no-existe", validItemReq(), testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_NotaFinalizada(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	require.NoError(t, err)
	require.NoError(t, uc.FinalizeBatch(context.Background(), batch.ID, testActor))

	// Una nota FINALIZED se trata igual que una inexistente.
	req := validItemReq()
	req.ScanCode = "A-002"
	_, err = uc.AddItem(context.Background(), batch.ID, req, testActor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_ScanCodeDuplicado(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	req := validItemReq()
	req.Quantity = 0
	_, err = uc.AddItem(context.Background(), batch.ID, req, testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinalizeBatch_SinItems(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	err = uc.FinalizeBatch(context.Background(), batch.ID, testActor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinalizeBatch_DosVeces(t *testing.T) {
	uc, _ := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	require.NoError(t, err)
	require.NoError(t, uc.FinalizeBatch(context.Background(), batch.ID, testActor))
	assert.ErrorIs(t, uc.FinalizeBatch(context.Background(), batch.ID, testActor), domain.ErrNotFound)
}

func TestIntake_RegistraAcciones(t *testing.T) {
	uc, store := newIntakeUC(t)
	batch, err := uc.CreateBatch(context.Background(), validBatchReq(), testActor)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), batch.ID, validItemReq(), testActor)
	require.NoError(t, err)
	require.NoError(t, uc.FinalizeBatch(context.Background(), batch.ID, testActor))

	logs := store.Logs()
	require.Len(t, logs, 3)
	for _, e := range logs {
		assert.Equal(t, entity.ActionIntakeItem, e.Kind)
		assert.Equal(t, testActor, e.ActorID)
	}
}
