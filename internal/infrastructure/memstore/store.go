// Package memstore implementa los puertos de persistencia en memoria.
// Se usa en los tests de casos de uso; replica la semántica del adaptador
// PostgreSQL, incluido el rollback todo-o-nada de los runners
// transaccionales.
package memstore

import (
	"sync"

	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// Store guarda todo el estado en mapas protegidos por un mutex.
type Store struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier
	batches   map[string]*entity.IntakeBatch
	items     map[string]*entity.StockItem
	sales     map[string]*entity.Sale
	saleLines []*entity.SaleLine
	logs      []*entity.ActionLogEntry
	users     map[string]*entity.User
}

// New construye un Store vacío.
func New() *Store {
	return &Store{
		suppliers: make(map[string]*entity.Supplier),
		batches:   make(map[string]*entity.IntakeBatch),
		items:     make(map[string]*entity.StockItem),
		sales:     make(map[string]*entity.Sale),
		users:     make(map[string]*entity.User),
	}
}

// snapshot copia el estado completo; las entidades son structs planos así que
// la copia por valor alcanza.
func (s *Store) snapshot() *Store {
	cp := New()
	for k, v := range s.suppliers {
		c := *v
		cp.suppliers[k] = &c
	}
	for k, v := range s.batches {
		c := *v
		cp.batches[k] = &c
	}
	for k, v := range s.items {
		c := *v
		cp.items[k] = &c
	}
	for k, v := range s.sales {
		c := *v
		cp.sales[k] = &c
	}
	for _, v := range s.saleLines {
		c := *v
		cp.saleLines = append(cp.saleLines, &c)
	}
	for _, v := range s.logs {
		c := *v
		cp.logs = append(cp.logs, &c)
	}
	for k, v := range s.users {
		c := *v
		cp.users[k] = &c
	}
	return cp
}

func (s *Store) restore(snap *Store) {
	s.suppliers = snap.suppliers
	s.batches = snap.batches
	s.items = snap.items
	s.sales = snap.sales
	s.saleLines = snap.saleLines
	s.logs = snap.logs
	s.users = snap.users
}

// Seed helpers para tests.

func (s *Store) SeedSupplier(sup *entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *sup
	s.suppliers[sup.ID] = &c
}

func (s *Store) SeedBatch(b *entity.IntakeBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *b
	s.batches[b.ID] = &c
}

func (s *Store) SeedItem(it *entity.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *it
	s.items[it.ID] = &c
}

func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.users[u.ID] = &c
}

// Batch devuelve el estado actual de una nota (copia), para aserciones.
func (s *Store) Batch(id string) *entity.IntakeBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return nil
	}
	c := *b
	return &c
}

// Item devuelve el estado actual de un ítem (copia), para aserciones.
func (s *Store) Item(id string) *entity.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil
	}
	c := *it
	return &c
}

// Logs devuelve las entradas del log acumuladas (copia), para aserciones.
func (s *Store) Logs() []*entity.ActionLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ActionLogEntry, 0, len(s.logs))
	for _, e := range s.logs {
		c := *e
		out = append(out, &c)
	}
	return out
}
