package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

var _ repository.IntakeBatchRepository = (*IntakeBatchRepo)(nil)

const intakeBatchColumns = `id, batch_number, supplier_id, issue_date, registered_at, status, registered_by, notes`

// IntakeBatchRepo implementación de IntakeBatchRepository sobre PostgreSQL.
type IntakeBatchRepo struct {
	q Querier
}

func NewIntakeBatchRepository(q Querier) *IntakeBatchRepo {
	return &IntakeBatchRepo{q: q}
}

// Create persiste una nota de consignación. El par (proveedor, número de
// nota) es único -> ErrDuplicate.
func (r *IntakeBatchRepo) Create(batch *entity.IntakeBatch) error {
	query := `
		INSERT INTO intake_batches (` + intakeBatchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.BatchNumber, batch.SupplierID, batch.IssueDate,
		batch.RegisteredAt, batch.Status, batch.RegisteredBy, batch.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert intake batch: %w", err)
	}
	return nil
}

func (r *IntakeBatchRepo) GetByID(id string) (*entity.IntakeBatch, error) {
	return r.getOne(`SELECT `+intakeBatchColumns+` FROM intake_batches WHERE id = $1`, id)
}

func (r *IntakeBatchRepo) GetBySupplierAndNumber(supplierID, batchNumber string) (*entity.IntakeBatch, error) {
	return r.getOne(
		`SELECT `+intakeBatchColumns+` FROM intake_batches WHERE supplier_id = $1 AND batch_number = $2`,
		supplierID, batchNumber,
	)
}

func (r *IntakeBatchRepo) getOne(query string, args ...any) (*entity.IntakeBatch, error) {
	var b entity.IntakeBatch
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&b.ID, &b.BatchNumber, &b.SupplierID, &b.IssueDate,
		&b.RegisteredAt, &b.Status, &b.RegisteredBy, &b.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intake batch: %w", err)
	}
	return &b, nil
}

// UpdateStatus cambia el estado de la nota.
func (r *IntakeBatchRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE intake_batches SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update batch status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IntakeBatchRepo) ListBySupplier(supplierID string) ([]*entity.IntakeBatch, error) {
	query := `SELECT ` + intakeBatchColumns + ` FROM intake_batches WHERE supplier_id = $1 ORDER BY issue_date DESC, registered_at DESC`
	return r.list(query, supplierID)
}

func (r *IntakeBatchRepo) ListByPeriod(from, to time.Time, supplierID string) ([]*entity.IntakeBatch, error) {
	query := `SELECT ` + intakeBatchColumns + ` FROM intake_batches WHERE registered_at >= $1 AND registered_at < $2`
	args := []any{from, to}
	if supplierID != "" {
		query += ` AND supplier_id = $3`
		args = append(args, supplierID)
	}
	query += ` ORDER BY registered_at`
	return r.list(query, args...)
}

// ListReturnable lista las notas FINALIZED del proveedor con al menos un
// ítem aún en stock: las únicas sobre las que procede una devolución.
func (r *IntakeBatchRepo) ListReturnable(supplierID string) ([]*entity.IntakeBatch, error) {
	query := `
		SELECT ` + intakeBatchColumns + ` FROM intake_batches b
		WHERE b.supplier_id = $1 AND b.status = 'FINALIZED'
		  AND EXISTS (
			SELECT 1 FROM stock_items i
			WHERE i.batch_id = b.id AND i.status = 'IN_STOCK' AND i.current_quantity > 0
		  )
		ORDER BY b.issue_date`
	return r.list(query, supplierID)
}

func (r *IntakeBatchRepo) list(query string, args ...any) ([]*entity.IntakeBatch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list intake batches: %w", err)
	}
	defer rows.Close()
	var out []*entity.IntakeBatch
	for rows.Next() {
		var b entity.IntakeBatch
		if err := rows.Scan(
			&b.ID, &b.BatchNumber, &b.SupplierID, &b.IssueDate,
			&b.RegisteredAt, &b.Status, &b.RegisteredBy, &b.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan intake batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// HasActive indica si el proveedor tiene alguna nota ACTIVE: bloquea su baja.
func (r *IntakeBatchRepo) HasActive(supplierID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM intake_batches
			WHERE supplier_id = $1 AND status = 'ACTIVE'
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, supplierID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active batches: %w", err)
	}
	return exists, nil
}
