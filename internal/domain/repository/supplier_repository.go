package repository

import "github.com/jhoicas/consigna-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByCNPJ(cnpj string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(onlyActive bool) ([]*entity.Supplier, error)
	// Search busca por nombre o CNPJ; el término llega ya normalizado
	// (minúsculas, sin acentos) por el caso de uso.
	Search(term string) ([]*entity.Supplier, error)
}
