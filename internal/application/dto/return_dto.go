package dto

// ReturnLineRequest una línea de devolución al proveedor.
type ReturnLineRequest struct {
	StockItemID string `json:"stock_item_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// ProcessReturnRequest entrada para procesar una devolución. La operación es
// todo-o-nada sobre todas las líneas.
type ProcessReturnRequest struct {
	Lines []ReturnLineRequest `json:"lines" validate:"required,min=1,dive"`
}
