package sales

import (
	"context"

	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción con los
// repositorios que necesita el gestor de ventas. Cada operación multi-paso
// (agregar línea, cancelar) es una unidad todo-o-nada.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		items repository.StockItemRepository,
		sales repository.SaleRepository,
		logs repository.ActionLogRepository,
	) error) error
}
