package allocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/allocation"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del asignador FIFO: recorrido en orden, tomas parciales entre notas y
// política todo-o-nada cuando el stock total no alcanza.
// ──────────────────────────────────────────────────────────────────────────────

func candidates() []allocation.Candidate {
	// Ya en orden FIFO: nota vieja primero.
	return []allocation.Candidate{
		{ItemID: "item-1", ScanCode: "A-001", BatchID: "batch-old", UnitPrice: decimal.NewFromFloat(10.50), Available: 5},
		{ItemID: "item-2", ScanCode: "A-002", BatchID: "batch-new", UnitPrice: decimal.NewFromFloat(12.00), Available: 5},
	}
}

func TestPlan_TomaDelMasViejoPrimero(t *testing.T) {
	plan, err := allocation.Plan(candidates(), 3)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "item-1", plan[0].ItemID)
	assert.Equal(t, 3, plan[0].Quantity)
}

func TestPlan_RepartoEntreNotas(t *testing.T) {
	// 7 unidades: 5 de la nota vieja agotan el ítem, 2 de la siguiente.
	plan, err := allocation.Plan(candidates(), 7)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "item-1", plan[0].ItemID)
	assert.Equal(t, 5, plan[0].Quantity)
	assert.Equal(t, "item-2", plan[1].ItemID)
	assert.Equal(t, 2, plan[1].Quantity)
}

func TestPlan_ExactoAgotaTodo(t *testing.T) {
	plan, err := allocation.Plan(candidates(), 10)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 5, plan[0].Quantity)
	assert.Equal(t, 5, plan[1].Quantity)
}

func TestPlan_InsuficienteEsTodoONada(t *testing.T) {
	// 11 > 10 disponibles: nada de plan parcial.
	plan, err := allocation.Plan(candidates(), 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, plan)
}

func TestPlan_SinCandidatos(t *testing.T) {
	plan, err := allocation.Plan(nil, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, plan)
}

func TestPlan_CantidadInvalida(t *testing.T) {
	for _, wanted := range []int{0, -3} {
		plan, err := allocation.Plan(candidates(), wanted)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, plan)
	}
}

func TestPlan_EsPuro(t *testing.T) {
	// Planear dos veces sobre los mismos candidatos da el mismo resultado:
	// Plan no muta el estado de entrada.
	cs := candidates()
	first, err := allocation.Plan(cs, 7)
	require.NoError(t, err)
	second, err := allocation.Plan(cs, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 5, cs[0].Available)
}

func TestPlan_SaltaCandidatosAgotados(t *testing.T) {
	cs := []allocation.Candidate{
		{ItemID: "item-1", Available: 0},
		{ItemID: "item-2", Available: 4},
	}
	plan, err := allocation.Plan(cs, 2)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "item-2", plan[0].ItemID)
}

func TestPlan_CopiaPrecioDelItem(t *testing.T) {
	plan, err := allocation.Plan(candidates(), 7)
	require.NoError(t, err)
	assert.True(t, plan[0].UnitPrice.Equal(decimal.NewFromFloat(10.50)))
	assert.True(t, plan[1].UnitPrice.Equal(decimal.NewFromFloat(12.00)))
	// 5 * 10.50 + 2 * 12.00 = 76.50
	total := plan[0].Total().Add(plan[1].Total())
	assert.True(t, total.Equal(decimal.NewFromFloat(76.50)), "total %s", total)
}

func TestFromItems_DescartaNoDisponibles(t *testing.T) {
	items := []*entity.StockItem{
		{ID: "a", Status: entity.ItemStatusInStock, CurrentQuantity: 3},
		{ID: "b", Status: entity.ItemStatusSold, CurrentQuantity: 0},
		{ID: "c", Status: entity.ItemStatusReturned, CurrentQuantity: 0},
		{ID: "d", Status: entity.ItemStatusInStock, CurrentQuantity: 0},
	}
	cs := allocation.FromItems(items)
	require.Len(t, cs, 1)
	assert.Equal(t, "a", cs[0].ItemID)
	assert.Equal(t, 3, cs[0].Available)
}
