package dto

import "github.com/shopspring/decimal"

// StockGroupResponse unidades disponibles por referencia + talla.
type StockGroupResponse struct {
	Reference   string `json:"reference"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Available   int    `json:"available"`
	Items       int    `json:"items"`
}

// StockStatsResponse estadísticas generales del inventario.
type StockStatsResponse struct {
	ItemsInStock int             `json:"items_in_stock"`
	TotalUnits   int             `json:"total_units"`
	TotalValue   decimal.Decimal `json:"total_value"`
}
