package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain"
)

// Estados de un ítem de stock.
const (
	ItemStatusInStock  = "IN_STOCK"
	ItemStatusSold     = "SOLD"
	ItemStatusReturned = "RETURNED"
)

// StockItem representa un lote físico registrado en una nota de entrada.
// ScanCode es único y global (una etiqueta por lote); Reference+Size es la clave
// de fungibilidad para la asignación FIFO. InitialQuantity es inmutable;
// CurrentQuantity solo cambia vía Take, Restore o Remove, que mantienen el
// invariante 0 <= CurrentQuantity <= InitialQuantity y
// CurrentQuantity == 0 <=> Status in {SOLD, RETURNED}.
type StockItem struct {
	ID              string
	ScanCode        string
	BatchID         string
	Reference       string
	Description     string
	Size            string
	UnitPrice       decimal.Decimal
	InitialQuantity int
	CurrentQuantity int
	Status          string
	CreatedAt       time.Time // desempate FIFO dentro de una misma nota
	RegisteredBy    string    // UserID
}

// Take descuenta qty unidades por venta. Marca SOLD al llegar a cero.
// Devuelve ErrInsufficientStock si la cantidad disponible es menor que qty:
// es la re-validación en el momento del commit que protege contra planes
// calculados sobre una lectura obsoleta.
func (i *StockItem) Take(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if i.Status != ItemStatusInStock || qty > i.CurrentQuantity {
		return domain.ErrInsufficientStock
	}
	i.CurrentQuantity -= qty
	if i.CurrentQuantity == 0 {
		i.Status = ItemStatusSold
	}
	return nil
}

// Restore repone qty unidades por cancelación de venta y vuelve a IN_STOCK.
// Superar InitialQuantity significaría reponer más de lo vendido: bug del
// motor, no un error del usuario.
func (i *StockItem) Restore(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if i.CurrentQuantity+qty > i.InitialQuantity {
		return domain.ErrInvariantViolation
	}
	i.CurrentQuantity += qty
	i.Status = ItemStatusInStock
	return nil
}

// Remove descuenta qty unidades por devolución al proveedor. Marca RETURNED
// al llegar a cero. Devuelve ErrExceedsAvailable si se pide más de lo que hay.
func (i *StockItem) Remove(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if i.Status != ItemStatusInStock {
		return domain.ErrNotFound
	}
	if qty > i.CurrentQuantity {
		return domain.ErrExceedsAvailable
	}
	i.CurrentQuantity -= qty
	if i.CurrentQuantity == 0 {
		i.Status = ItemStatusReturned
	}
	return nil
}
