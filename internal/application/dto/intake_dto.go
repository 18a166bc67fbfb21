package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBatchRequest entrada para abrir una nota de entrada.
type CreateBatchRequest struct {
	SupplierID  string    `json:"supplier_id" validate:"required,uuid"`
	BatchNumber string    `json:"batch_number" validate:"required,max=50"`
	IssueDate   time.Time `json:"issue_date" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty,max=500"`
}

// AddItemRequest entrada para agregar un ítem a una nota ACTIVE.
type AddItemRequest struct {
	ScanCode    string          `json:"scan_code" validate:"required,max=50"`
	Reference   string          `json:"reference" validate:"required,max=50"`
	Description string          `json:"description" validate:"required,max=200"`
	Size        string          `json:"size" validate:"required,max=10"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
}

// BatchResponse salida de una nota de entrada.
type BatchResponse struct {
	ID           string    `json:"id"`
	BatchNumber  string    `json:"batch_number"`
	SupplierID   string    `json:"supplier_id"`
	IssueDate    time.Time `json:"issue_date"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

// StockItemResponse salida de un ítem de stock.
type StockItemResponse struct {
	ID              string          `json:"id"`
	ScanCode        string          `json:"scan_code"`
	BatchID         string          `json:"batch_id"`
	Reference       string          `json:"reference"`
	Description     string          `json:"description"`
	Size            string          `json:"size"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	InitialQuantity int             `json:"initial_quantity"`
	CurrentQuantity int             `json:"current_quantity"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
