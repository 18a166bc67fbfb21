package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

func newItem(initial int) *entity.StockItem {
	return &entity.StockItem{
		ID:              "item-1",
		ScanCode:        "A-001",
		InitialQuantity: initial,
		CurrentQuantity: initial,
		Status:          entity.ItemStatusInStock,
	}
}

func TestTake_DescuentaYMantieneEstado(t *testing.T) {
	it := newItem(5)
	require.NoError(t, it.Take(2))
	assert.Equal(t, 3, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, it.Status)
}

func TestTake_AgotarMarcaSold(t *testing.T) {
	it := newItem(5)
	require.NoError(t, it.Take(5))
	assert.Equal(t, 0, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusSold, it.Status)
}

func TestTake_MasDeLoDisponible(t *testing.T) {
	it := newItem(5)
	err := it.Take(6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	// Fallo sin mutación.
	assert.Equal(t, 5, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, it.Status)
}

func TestTake_SobreItemVendido(t *testing.T) {
	it := newItem(2)
	require.NoError(t, it.Take(2))
	assert.ErrorIs(t, it.Take(1), domain.ErrInsufficientStock)
}

func TestTake_CantidadInvalida(t *testing.T) {
	it := newItem(5)
	assert.ErrorIs(t, it.Take(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, it.Take(-1), domain.ErrInvalidInput)
}

func TestRestore_RepoponeYVuelveAInStock(t *testing.T) {
	it := newItem(5)
	require.NoError(t, it.Take(5))
	require.Equal(t, entity.ItemStatusSold, it.Status)

	require.NoError(t, it.Restore(5))
	assert.Equal(t, 5, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, it.Status)
}

func TestRestore_NoSuperaInicial(t *testing.T) {
	it := newItem(5)
	require.NoError(t, it.Take(2))
	// Reponer 3 cuando solo se tomaron 2 violaría el invariante.
	assert.ErrorIs(t, it.Restore(3), domain.ErrInvariantViolation)
	assert.Equal(t, 3, it.CurrentQuantity)
}

func TestRemove_AgotarMarcaReturned(t *testing.T) {
	it := newItem(4)
	require.NoError(t, it.Remove(4))
	assert.Equal(t, 0, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusReturned, it.Status)
}

func TestRemove_Parcial(t *testing.T) {
	it := newItem(4)
	require.NoError(t, it.Remove(1))
	assert.Equal(t, 3, it.CurrentQuantity)
	assert.Equal(t, entity.ItemStatusInStock, it.Status)
}

func TestRemove_ExcedeDisponible(t *testing.T) {
	it := newItem(4)
	err := it.Remove(5)
	assert.ErrorIs(t, err, domain.ErrExceedsAvailable)
	assert.Equal(t, 4, it.CurrentQuantity)
}

func TestRemove_FueraDeStock(t *testing.T) {
	it := newItem(2)
	require.NoError(t, it.Take(2))
	assert.ErrorIs(t, it.Remove(1), domain.ErrNotFound)
}
