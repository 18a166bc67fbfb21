package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, scan_code, batch_id, reference, description, size, unit_price, initial_quantity, current_quantity, status, created_at, registered_by`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un ítem nuevo. Scan code duplicado -> ErrDuplicate.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ScanCode, item.BatchID, item.Reference, item.Description, item.Size,
		item.UnitPrice, item.InitialQuantity, item.CurrentQuantity, item.Status,
		item.CreatedAt, item.RegisteredBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene un ítem bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *StockItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1 FOR UPDATE`, id)
}

// GetByScanCode obtiene un ítem por su código de etiqueta (único global).
func (r *StockItemRepo) GetByScanCode(scanCode string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE scan_code = $1`, scanCode)
}

func (r *StockItemRepo) getOne(query string, arg any) (*entity.StockItem, error) {
	var it entity.StockItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.ScanCode, &it.BatchID, &it.Reference, &it.Description, &it.Size,
		&it.UnitPrice, &it.InitialQuantity, &it.CurrentQuantity, &it.Status,
		&it.CreatedAt, &it.RegisteredBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &it, nil
}

// fifoQuery ordena por fecha de emisión de la nota ascendente y fecha de
// registro del ítem como desempate: el orden FIFO del asignador.
const fifoQuery = `
	SELECT i.id, i.scan_code, i.batch_id, i.reference, i.description, i.size,
	       i.unit_price, i.initial_quantity, i.current_quantity, i.status,
	       i.created_at, i.registered_by
	FROM stock_items i
	JOIN intake_batches b ON b.id = i.batch_id
	WHERE i.reference = $1 AND i.size = $2
	  AND i.status = 'IN_STOCK' AND i.current_quantity > 0
	ORDER BY b.issue_date ASC, i.created_at ASC`

// ListAvailableFIFO devuelve los candidatos de asignación en orden FIFO.
func (r *StockItemRepo) ListAvailableFIFO(reference, size string) ([]*entity.StockItem, error) {
	return r.list(fifoQuery, reference, size)
}

// ListAvailableFIFOForUpdate igual que ListAvailableFIFO pero bloqueando las
// filas de stock_items (FOR UPDATE OF i): dos transacciones concurrentes no
// pueden planear sobre las mismas unidades.
func (r *StockItemRepo) ListAvailableFIFOForUpdate(reference, size string) ([]*entity.StockItem, error) {
	return r.list(fifoQuery+` FOR UPDATE OF i`, reference, size)
}

// ListByBatch lista todos los ítems de una nota.
func (r *StockItemRepo) ListByBatch(batchID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE batch_id = $1 ORDER BY created_at`
	return r.list(query, batchID)
}

// ListReturnable lista los ítems de una nota aún disponibles para devolución.
func (r *StockItemRepo) ListReturnable(batchID string) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + ` FROM stock_items
		WHERE batch_id = $1 AND status = 'IN_STOCK' AND current_quantity > 0
		ORDER BY created_at`
	return r.list(query, batchID)
}

func (r *StockItemRepo) list(query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(
			&it.ID, &it.ScanCode, &it.BatchID, &it.Reference, &it.Description, &it.Size,
			&it.UnitPrice, &it.InitialQuantity, &it.CurrentQuantity, &it.Status,
			&it.CreatedAt, &it.RegisteredBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// CountByBatch cuenta los ítems de una nota.
func (r *StockItemRepo) CountByBatch(batchID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_items WHERE batch_id = $1`, batchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items by batch: %w", err)
	}
	return count, nil
}

// UpdateQuantityStatus persiste los únicos campos mutables del ítem.
func (r *StockItemRepo) UpdateQuantityStatus(item *entity.StockItem) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET current_quantity = $2, status = $3 WHERE id = $1`,
		item.ID, item.CurrentQuantity, item.Status,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListGroups agrupa el stock disponible por referencia + talla. Filtros de
// coincidencia exacta; vacío = todos.
func (r *StockItemRepo) ListGroups(reference, size string) ([]*repository.StockGroup, error) {
	query := `
		SELECT reference, MIN(description), size, COALESCE(SUM(current_quantity), 0), COUNT(*)
		FROM stock_items
		WHERE status = 'IN_STOCK' AND current_quantity > 0`
	args := []any{}
	pos := 1
	if reference != "" {
		query += fmt.Sprintf(" AND reference = $%d", pos)
		args = append(args, reference)
		pos++
	}
	if size != "" {
		query += fmt.Sprintf(" AND size = $%d", pos)
		args = append(args, size)
	}
	query += ` GROUP BY reference, size ORDER BY reference, size`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock groups: %w", err)
	}
	defer rows.Close()
	var out []*repository.StockGroup
	for rows.Next() {
		var g repository.StockGroup
		if err := rows.Scan(&g.Reference, &g.Description, &g.Size, &g.Available, &g.Items); err != nil {
			return nil, fmt.Errorf("scan stock group: %w", err)
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}

// Stats devuelve ítems en stock, unidades totales y valor del inventario
// (unidades * precio unitario).
func (r *StockItemRepo) Stats() (*repository.StockStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(current_quantity), 0),
		       COALESCE(SUM(current_quantity * unit_price), 0)
		FROM stock_items WHERE status = 'IN_STOCK'`
	stats := &repository.StockStats{TotalValue: decimal.Zero}
	err := r.q.QueryRow(context.Background(), query).Scan(&stats.ItemsInStock, &stats.TotalUnits, &stats.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("stock stats: %w", err)
	}
	return stats, nil
}
