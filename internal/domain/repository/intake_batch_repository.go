package repository

import (
	"time"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// IntakeBatchRepository define el puerto de persistencia para notas de entrada.
type IntakeBatchRepository interface {
	Create(batch *entity.IntakeBatch) error
	GetByID(id string) (*entity.IntakeBatch, error)
	GetBySupplierAndNumber(supplierID, batchNumber string) (*entity.IntakeBatch, error)
	UpdateStatus(id, status string) error
	ListBySupplier(supplierID string) ([]*entity.IntakeBatch, error)
	ListByPeriod(from, to time.Time, supplierID string) ([]*entity.IntakeBatch, error)
	// ListReturnable devuelve las notas FINALIZED del proveedor que aún tienen
	// al menos un ítem IN_STOCK con cantidad > 0 (candidatas a devolución).
	ListReturnable(supplierID string) ([]*entity.IntakeBatch, error)
	// HasActive indica si el proveedor tiene alguna nota ACTIVE; bloquea su baja.
	HasActive(supplierID string) (bool, error)
}
