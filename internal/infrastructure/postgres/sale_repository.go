package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, occurred_at, operator_id, customer_name, customer_tax_id, total, payment_method, status, notes`

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.OccurredAt, sale.OperatorID, sale.CustomerName, sale.CustomerTaxID,
		sale.Total, sale.PaymentMethod, sale.Status, sale.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.OccurredAt, &s.OperatorID, &s.CustomerName, &s.CustomerTaxID,
		&s.Total, &s.PaymentMethod, &s.Status, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) UpdateTotal(id string, total decimal.Decimal) error {
	return r.updateField(`UPDATE sales SET total = $2 WHERE id = $1`, id, total)
}

func (r *SaleRepo) UpdatePayment(id, paymentMethod string) error {
	return r.updateField(`UPDATE sales SET payment_method = $2 WHERE id = $1`, id, paymentMethod)
}

func (r *SaleRepo) UpdateStatus(id, status string) error {
	return r.updateField(`UPDATE sales SET status = $2 WHERE id = $1`, id, status)
}

func (r *SaleRepo) updateField(query, id string, value any) error {
	tag, err := r.q.Exec(context.Background(), query, id, value)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, stock_item_id, batch_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.StockItemID, line.BatchID, line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, stock_item_id, batch_id, quantity, unit_price
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var out []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.StockItemID, &l.BatchID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// SumLines recalcula el total de la venta desde sus líneas. Nunca se acumula
// sobre el total anterior.
func (r *SaleRepo) SumLines(saleID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity * unit_price), 0) FROM sale_lines WHERE sale_id = $1`,
		saleID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sale lines: %w", err)
	}
	return total, nil
}

func (r *SaleRepo) ListByPeriod(from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE occurred_at >= $1 AND occurred_at < $2 ORDER BY occurred_at`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.OccurredAt, &s.OperatorID, &s.CustomerName, &s.CustomerTaxID,
			&s.Total, &s.PaymentMethod, &s.Status, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
