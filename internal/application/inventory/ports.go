package inventory

import (
	"context"

	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad todo-o-nada del motor de
// inventario: o se aplican todas las mutaciones y entradas de log, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.StockItemRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error) error
}
