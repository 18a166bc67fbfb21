package partner

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
	"github.com/jhoicas/consigna-api/pkg/cnpj"
)

// SupplierUseCase gestiona proveedores de consignación: alta con CNPJ
// validado, actualización parcial con diff auditado y baja lógica.
type SupplierUseCase struct {
	txRunner     PartnerTxRunner
	supplierRepo repository.SupplierRepository
	batchRepo    repository.IntakeBatchRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(txRunner PartnerTxRunner, supplierRepo repository.SupplierRepository, batchRepo repository.IntakeBatchRepository) *SupplierUseCase {
	return &SupplierUseCase{txRunner: txRunner, supplierRepo: supplierRepo, batchRepo: batchRepo}
}

// CreateSupplier registra un proveedor nuevo. El CNPJ debe tener dígitos
// verificadores válidos y ser único en el sistema.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest, actorID string) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	normalized, err := cnpj.Normalize(in.CNPJ)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.supplierRepo.GetByCNPJ(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CNPJ:      normalized,
		Phone:     in.Phone,
		Email:     in.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.RunPartner(ctx, func(
		suppliers repository.SupplierRepository,
		_ repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		if err := suppliers.Create(supplier); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionUserChange,
			Description:   fmt.Sprintf("Creación de proveedor: %s (CNPJ %s)", supplier.Name, supplier.CNPJ),
			AffectedTable: "suppliers",
			AffectedID:    supplier.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// UpdateSupplier aplica un patch explícito campo a campo sobre un proveedor
// activo. Solo los campos no nulos se tocan; cada cambio real queda en el log
// con su valor anterior. Sin cambios efectivos, no se escribe nada.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, supplierID string, patch dto.SupplierPatch, actorID string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.ErrNotFound
	}

	var changes []string
	apply := func(field string, target *string, value *string) {
		if value == nil || *value == *target {
			return
		}
		changes = append(changes, fmt.Sprintf("%s: %s -> %s", field, *target, *value))
		*target = *value
	}
	apply("nombre", &supplier.Name, patch.Name)
	apply("teléfono", &supplier.Phone, patch.Phone)
	apply("email", &supplier.Email, patch.Email)

	if len(changes) == 0 {
		return toSupplierResponse(supplier), nil
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.UpdatedAt = time.Now()

	err = uc.txRunner.RunPartner(ctx, func(
		suppliers repository.SupplierRepository,
		_ repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		if err := suppliers.Update(supplier); err != nil {
			return err
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionUserChange,
			Description:   fmt.Sprintf("Actualización de proveedor %s: %s", supplier.Name, strings.Join(changes, ", ")),
			AffectedTable: "suppliers",
			AffectedID:    supplier.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// SetActive activa o desactiva (baja lógica) un proveedor. No se puede
// desactivar mientras tenga notas de entrada ACTIVE.
func (uc *SupplierUseCase) SetActive(ctx context.Context, supplierID string, active bool, actorID string) error {
	return uc.txRunner.RunPartner(ctx, func(
		suppliers repository.SupplierRepository,
		batches repository.IntakeBatchRepository,
		logs repository.ActionLogRepository,
	) error {
		supplier, err := suppliers.GetByID(supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
		if supplier.Active == active {
			return domain.ErrConflict
		}
		if !active {
			hasActive, err := batches.HasActive(supplierID)
			if err != nil {
				return err
			}
			if hasActive {
				return domain.ErrConflict
			}
		}
		supplier.Active = active
		supplier.UpdatedAt = time.Now()
		if err := suppliers.Update(supplier); err != nil {
			return err
		}
		verb := "Desactivación"
		if active {
			verb = "Activación"
		}
		return logs.Create(&entity.ActionLogEntry{
			ActorID:       actorID,
			OccurredAt:    time.Now(),
			Kind:          entity.ActionUserChange,
			Description:   fmt.Sprintf("%s de proveedor: %s", verb, supplier.Name),
			AffectedTable: "suppliers",
			AffectedID:    supplier.ID,
		})
	})
}

// GetSupplier devuelve un proveedor por ID.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, supplierID string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// ListSuppliers lista proveedores, por defecto solo los activos.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context, onlyActive bool) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// SearchSuppliers busca por nombre o CNPJ, insensible a acentos y mayúsculas.
func (uc *SupplierUseCase) SearchSuppliers(ctx context.Context, term string) ([]dto.SupplierResponse, error) {
	term = FoldSearchTerm(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	suppliers, err := uc.supplierRepo.Search(term)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// FoldSearchTerm normaliza un término de búsqueda: minúsculas y sin marcas
// diacríticas ("Ça" y "ca" encuentran lo mismo).
func FoldSearchTerm(term string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, term)
	if err != nil {
		folded = term
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Phone:     s.Phone,
		Email:     s.Email,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}
