package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// StockGroup agrupa ítems intercambiables (misma referencia y talla) para la
// vista de stock.
type StockGroup struct {
	Reference   string
	Description string
	Size        string
	Available   int
	Items       int
}

// StockStats resume el estado general del inventario.
type StockStats struct {
	ItemsInStock int
	TotalUnits   int
	TotalValue   decimal.Decimal
}

// StockItemRepository define el puerto de persistencia para ítems de stock.
// Las variantes ForUpdate bloquean fila (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción: son la base de la serialización
// plan/commit por ítem.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	GetByScanCode(scanCode string) (*entity.StockItem, error)
	// ListAvailableFIFO devuelve los ítems IN_STOCK con cantidad > 0 para la
	// referencia y talla exactas, ordenados por fecha de emisión de la nota
	// ascendente y fecha de registro del ítem como desempate.
	ListAvailableFIFO(reference, size string) ([]*entity.StockItem, error)
	ListAvailableFIFOForUpdate(reference, size string) ([]*entity.StockItem, error)
	ListByBatch(batchID string) ([]*entity.StockItem, error)
	// ListReturnable devuelve los ítems IN_STOCK con cantidad > 0 de una nota.
	ListReturnable(batchID string) ([]*entity.StockItem, error)
	CountByBatch(batchID string) (int, error)
	// UpdateQuantityStatus persiste current_quantity y status, los únicos campos
	// mutables de un ítem.
	UpdateQuantityStatus(item *entity.StockItem) error
	ListGroups(reference, size string) ([]*StockGroup, error)
	Stats() (*StockStats, error)
}
