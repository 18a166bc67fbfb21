package partner

import (
	"context"

	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// PartnerTxRunner ejecuta una función dentro de una transacción con los
// repositorios de proveedores, para que mutación y entrada de log se
// persistan como una sola unidad.
type PartnerTxRunner interface {
	RunPartner(ctx context.Context, fn func(
		suppliers repository.SupplierRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error) error
}
