package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// Candidate es un ítem disponible para asignación. Los candidatos llegan ya
// ordenados FIFO: fecha de emisión de la nota ascendente y, dentro de la misma
// nota, fecha de registro del ítem ascendente.
type Candidate struct {
	ItemID    string
	ScanCode  string
	BatchID   string
	UnitPrice decimal.Decimal
	Available int
}

// Line es una toma concreta del plan: qué ítem y cuántas unidades.
type Line struct {
	ItemID    string
	ScanCode  string
	BatchID   string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total devuelve el valor de la línea al precio copiado del ítem.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Plan recorre los candidatos en orden y toma min(disponible, faltante) de cada
// uno hasta cubrir wanted. Función pura: no muta nada; el commit es un paso
// aparte del Sale Transaction Manager.
//
// Política todo-o-nada: si el stock total no alcanza, devuelve nil y
// ErrInsufficientStock — nunca un plan parcial. Un plan vacío no existe:
// wanted <= 0 es ErrInvalidInput.
func Plan(candidates []Candidate, wanted int) ([]Line, error) {
	if wanted <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var lines []Line
	remaining := wanted
	for _, c := range candidates {
		if remaining == 0 {
			break
		}
		if c.Available <= 0 {
			continue
		}
		take := c.Available
		if take > remaining {
			take = remaining
		}
		lines = append(lines, Line{
			ItemID:    c.ItemID,
			ScanCode:  c.ScanCode,
			BatchID:   c.BatchID,
			UnitPrice: c.UnitPrice,
			Quantity:  take,
		})
		remaining -= take
	}
	if remaining > 0 {
		return nil, domain.ErrInsufficientStock
	}
	return lines, nil
}

// FromItems convierte ítems de stock (ya ordenados FIFO por el repositorio) en
// candidatos, descartando los que no están disponibles.
func FromItems(items []*entity.StockItem) []Candidate {
	var out []Candidate
	for _, it := range items {
		if it.Status != entity.ItemStatusInStock || it.CurrentQuantity <= 0 {
			continue
		}
		out = append(out, Candidate{
			ItemID:    it.ID,
			ScanCode:  it.ScanCode,
			BatchID:   it.BatchID,
			UnitPrice: it.UnitPrice,
			Available: it.CurrentQuantity,
		})
	}
	return out
}
