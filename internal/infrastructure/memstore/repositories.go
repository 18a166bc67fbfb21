package memstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consigna-api/internal/application/partner"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
)

// Las fábricas devuelven vistas del mismo Store; todas comparten estado.

func (s *Store) Suppliers() repository.SupplierRepository { return &supplierRepo{s} }
func (s *Store) Batches() repository.IntakeBatchRepository { return &batchRepo{s} }
func (s *Store) Items() repository.StockItemRepository { return &itemRepo{s} }
func (s *Store) Sales() repository.SaleRepository { return &saleRepo{s} }
func (s *Store) ActionLogs() repository.ActionLogRepository { return &logRepo{s} }
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// ---- suppliers ----

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.suppliers {
		if existing.CNPJ == sup.CNPJ {
			return domain.ErrDuplicate
		}
	}
	c := *sup
	r.s.suppliers[sup.ID] = &c
	return nil
}

func (r *supplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	c := *sup
	return &c, nil
}

func (r *supplierRepo) GetByCNPJ(cnpj string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sup := range r.s.suppliers {
		if sup.CNPJ == cnpj {
			c := *sup
			return &c, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) Update(sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *sup
	r.s.suppliers[sup.ID] = &c
	return nil
}

func (r *supplierRepo) List(onlyActive bool) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Supplier
	for _, sup := range r.s.suppliers {
		if onlyActive && !sup.Active {
			continue
		}
		c := *sup
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Search espeja al adaptador SQL: el nombre se pliega igual que el término
// (minúsculas, sin acentos).
func (r *supplierRepo) Search(term string) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Supplier
	for _, sup := range r.s.suppliers {
		if strings.Contains(partner.FoldSearchTerm(sup.Name), term) || strings.Contains(sup.CNPJ, term) {
			c := *sup
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---- intake batches ----

type batchRepo struct{ s *Store }

func (r *batchRepo) Create(b *entity.IntakeBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.batches {
		if existing.SupplierID == b.SupplierID && existing.BatchNumber == b.BatchNumber {
			return domain.ErrDuplicate
		}
	}
	c := *b
	r.s.batches[b.ID] = &c
	return nil
}

func (r *batchRepo) GetByID(id string) (*entity.IntakeBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *batchRepo) GetBySupplierAndNumber(supplierID, batchNumber string) (*entity.IntakeBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.batches {
		if b.SupplierID == supplierID && b.BatchNumber == batchNumber {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (r *batchRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *batchRepo) ListBySupplier(supplierID string) ([]*entity.IntakeBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.IntakeBatch
	for _, b := range r.s.batches {
		if b.SupplierID == supplierID {
			c := *b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssueDate.After(out[j].IssueDate) })
	return out, nil
}

func (r *batchRepo) ListByPeriod(from, to time.Time, supplierID string) ([]*entity.IntakeBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.IntakeBatch
	for _, b := range r.s.batches {
		if b.RegisteredAt.Before(from) || !b.RegisteredAt.Before(to) {
			continue
		}
		if supplierID != "" && b.SupplierID != supplierID {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.Before(out[j].RegisteredAt) })
	return out, nil
}

func (r *batchRepo) ListReturnable(supplierID string) ([]*entity.IntakeBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.IntakeBatch
	for _, b := range r.s.batches {
		if b.SupplierID != supplierID || b.Status != entity.BatchStatusFinalized {
			continue
		}
		if !r.s.batchHasStock(b.ID) {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssueDate.Before(out[j].IssueDate) })
	return out, nil
}

func (s *Store) batchHasStock(batchID string) bool {
	for _, it := range s.items {
		if it.BatchID == batchID && it.Status == entity.ItemStatusInStock && it.CurrentQuantity > 0 {
			return true
		}
	}
	return false
}

func (r *batchRepo) HasActive(supplierID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.batches {
		if b.SupplierID == supplierID && b.Status == entity.BatchStatusActive {
			return true, nil
		}
	}
	return false, nil
}

// ---- stock items ----

type itemRepo struct{ s *Store }

func (r *itemRepo) Create(it *entity.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.items {
		if existing.ScanCode == it.ScanCode {
			return domain.ErrDuplicate
		}
	}
	c := *it
	r.s.items[it.ID] = &c
	return nil
}

func (r *itemRepo) GetByID(id string) (*entity.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	c := *it
	return &c, nil
}

// GetByIDForUpdate en memoria no bloquea: equivale a GetByID.
func (r *itemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *itemRepo) GetByScanCode(scanCode string) (*entity.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.ScanCode == scanCode {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *itemRepo) ListAvailableFIFO(reference, size string) ([]*entity.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockItem
	for _, it := range r.s.items {
		if it.Reference != reference || it.Size != size {
			continue
		}
		if it.Status != entity.ItemStatusInStock || it.CurrentQuantity <= 0 {
			continue
		}
		c := *it
		out = append(out, &c)
	}
	// Orden FIFO: fecha de emisión de la nota y luego fecha de registro.
	sort.Slice(out, func(i, j int) bool {
		bi, bj := r.s.batches[out[i].BatchID], r.s.batches[out[j].BatchID]
		if bi != nil && bj != nil && !bi.IssueDate.Equal(bj.IssueDate) {
			return bi.IssueDate.Before(bj.IssueDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *itemRepo) ListAvailableFIFOForUpdate(reference, size string) ([]*entity.StockItem, error) {
	return r.ListAvailableFIFO(reference, size)
}

func (r *itemRepo) ListByBatch(batchID string) ([]*entity.StockItem, error) {
	return r.listBatch(batchID, false)
}

func (r *itemRepo) ListReturnable(batchID string) ([]*entity.StockItem, error) {
	return r.listBatch(batchID, true)
}

func (r *itemRepo) listBatch(batchID string, onlyAvailable bool) ([]*entity.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockItem
	for _, it := range r.s.items {
		if it.BatchID != batchID {
			continue
		}
		if onlyAvailable && (it.Status != entity.ItemStatusInStock || it.CurrentQuantity <= 0) {
			continue
		}
		c := *it
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *itemRepo) CountByBatch(batchID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, it := range r.s.items {
		if it.BatchID == batchID {
			count++
		}
	}
	return count, nil
}

func (r *itemRepo) UpdateQuantityStatus(item *entity.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.CurrentQuantity = item.CurrentQuantity
	stored.Status = item.Status
	return nil
}

func (r *itemRepo) ListGroups(reference, size string) ([]*repository.StockGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	groups := make(map[string]*repository.StockGroup)
	for _, it := range r.s.items {
		if it.Status != entity.ItemStatusInStock || it.CurrentQuantity <= 0 {
			continue
		}
		if reference != "" && it.Reference != reference {
			continue
		}
		if size != "" && it.Size != size {
			continue
		}
		key := it.Reference + "\x00" + it.Size
		g, ok := groups[key]
		if !ok {
			g = &repository.StockGroup{Reference: it.Reference, Description: it.Description, Size: it.Size}
			groups[key] = g
		}
		g.Available += it.CurrentQuantity
		g.Items++
	}
	out := make([]*repository.StockGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reference != out[j].Reference {
			return out[i].Reference < out[j].Reference
		}
		return out[i].Size < out[j].Size
	})
	return out, nil
}

func (r *itemRepo) Stats() (*repository.StockStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stats := &repository.StockStats{TotalValue: decimal.Zero}
	for _, it := range r.s.items {
		if it.Status != entity.ItemStatusInStock {
			continue
		}
		stats.ItemsInStock++
		stats.TotalUnits += it.CurrentQuantity
		stats.TotalValue = stats.TotalValue.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.CurrentQuantity))))
	}
	return stats, nil
}

// ---- sales ----

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *sale
	r.s.sales[sale.ID] = &c
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	c := *sale
	return &c, nil
}

func (r *saleRepo) UpdateTotal(id string, total decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Total = total
	return nil
}

func (r *saleRepo) UpdatePayment(id, paymentMethod string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.PaymentMethod = paymentMethod
	return nil
}

func (r *saleRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Status = status
	return nil
}

func (r *saleRepo) CreateLine(line *entity.SaleLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *line
	r.s.saleLines = append(r.s.saleLines, &c)
	return nil
}

func (r *saleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SaleLine
	for _, l := range r.s.saleLines {
		if l.SaleID == saleID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *saleRepo) SumLines(saleID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, l := range r.s.saleLines {
		if l.SaleID == saleID {
			total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
	}
	return total, nil
}

func (r *saleRepo) ListByPeriod(from, to time.Time) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.OccurredAt.Before(from) || !sale.OccurredAt.Before(to) {
			continue
		}
		c := *sale
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

// ---- action log ----

type logRepo struct{ s *Store }

func (r *logRepo) Create(entry *entity.ActionLogEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	c := *entry
	r.s.logs = append(r.s.logs, &c)
	return nil
}

func (r *logRepo) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.ActionLogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var filtered []*entity.ActionLogEntry
	for _, e := range r.s.logs {
		if e.OccurredAt.Before(from) || !e.OccurredAt.Before(to) {
			continue
		}
		c := *e
		filtered = append(filtered, &c)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].OccurredAt.After(filtered[j].OccurredAt) })
	return page(filtered, limit, offset), nil
}

func (r *logRepo) ListByActor(actorID string, limit, offset int) ([]*entity.ActionLogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var filtered []*entity.ActionLogEntry
	for _, e := range r.s.logs {
		if e.ActorID != actorID {
			continue
		}
		c := *e
		filtered = append(filtered, &c)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].OccurredAt.After(filtered[j].OccurredAt) })
	return page(filtered, limit, offset), nil
}

func page(entries []*entity.ActionLogEntry, limit, offset int) []*entity.ActionLogEntry {
	if offset >= len(entries) {
		return nil
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// ---- users ----

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Login == u.Login {
			return domain.ErrDuplicate
		}
	}
	c := *u
	r.s.users[u.ID] = &c
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *userRepo) GetByLogin(login string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Login == login {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}
