package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartSaleRequest entrada para abrir una venta.
type StartSaleRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerTaxID string `json:"customer_tax_id" validate:"omitempty,len=11"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

// AddLineRequest entrada para agregar una línea: la demanda se expresa por
// referencia + talla, no por ítem; el asignador FIFO decide los ítems.
type AddLineRequest struct {
	Reference string `json:"reference" validate:"required,max=50"`
	Size      string `json:"size" validate:"required,max=10"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// FinalizeSaleRequest entrada para cerrar la venta con su forma de pago.
type FinalizeSaleRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CASH CREDIT_CARD DEBIT_CARD PIX"`
}

// PlanAllocationRequest consulta de plan FIFO (solo lectura, no compromete stock).
type PlanAllocationRequest struct {
	Reference string `query:"reference" validate:"required"`
	Size      string `query:"size" validate:"required"`
	Quantity  int    `query:"quantity" validate:"required,min=1"`
}

// AllocationLineResponse una toma del plan FIFO.
type AllocationLineResponse struct {
	StockItemID string          `json:"stock_item_id"`
	ScanCode    string          `json:"scan_code"`
	BatchID     string          `json:"batch_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// AllocationPlanResponse plan completo con su valor total estimado.
type AllocationPlanResponse struct {
	Lines []AllocationLineResponse `json:"lines"`
	Total decimal.Decimal          `json:"total"`
}

// SaleLineResponse salida de una línea de venta.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	BatchID     string          `json:"batch_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	OccurredAt    time.Time          `json:"occurred_at"`
	OperatorID    string             `json:"operator_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerTaxID string             `json:"customer_tax_id,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Status        string             `json:"status"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
}

// SalesPeriodRow fila del reporte de ventas por período.
type SalesPeriodRow struct {
	ID            string          `json:"id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CustomerName  string          `json:"customer_name"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
}

// PaymentBreakdown acumulado por forma de pago en el resumen diario.
type PaymentBreakdown struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

// DailySummaryResponse resumen de caja de un día.
type DailySummaryResponse struct {
	Date      string             `json:"date"`
	Count     int                `json:"count"`
	Total     decimal.Decimal    `json:"total"`
	ByPayment []PaymentBreakdown `json:"by_payment"`
}
