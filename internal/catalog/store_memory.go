package catalog

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemStore keeps products in a mutex-guarded map. Id allocation goes
// through an atomic counter so concurrent Saves with nil ids never collide,
// and every map access happens under the lock so List never observes a torn
// view. Nothing blocks or does I/O while the lock is held.
type MemStore struct {
	mu     sync.RWMutex
	m      map[int64]Product
	nextID atomic.Int64
}

// NewMemStore builds a store seeded with two sample products. Seeding goes
// through the normal Save path, so they get generated ids 1 and 2.
func NewMemStore() *MemStore {
	s := &MemStore{m: make(map[int64]Product)}

	nameA, nameB := "Sample Product A", "Sample Product B"
	s.Save(Product{Name: &nameA, Price: 19.9})
	s.Save(Product{Name: &nameB, Price: 29.9})
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p.Clone())
	}
	return out
}

func (s *MemStore) GetByID(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	if !ok {
		return Product{}, false
	}
	return p.Clone(), true
}

func (s *MemStore) Save(p Product) Product {
	p = p.Clone()
	if p.ID == nil {
		id := s.nextID.Add(1)
		p.ID = &id
	}

	s.mu.Lock()
	s.m[*p.ID] = p
	s.mu.Unlock()

	return p.Clone()
}

func (s *MemStore) DeleteByID(id int64) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Snapshot returns a cloned copy of the current contents keyed by id, for
// tooling and tests that need to inspect state without going through List.
// Unlike the live map, mutating the result has no effect on the store.
func (s *MemStore) Snapshot() map[int64]Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]Product, len(s.m))
	for id, p := range s.m {
		out[id] = p.Clone()
	}
	return out
}

// Reset replaces the entire contents in one critical section. Products
// without an id are assigned one, and the id counter ends up above every id
// present so later Saves cannot collide with seeded entries.
func (s *MemStore) Reset(ps ...Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[int64]Product, len(ps))

	var max int64
	for _, p := range ps {
		p = p.Clone()
		if p.ID == nil {
			max++
			id := max
			p.ID = &id
		} else if *p.ID > max {
			max = *p.ID
		}
		s.m[*p.ID] = p
	}
	s.nextID.Store(max)
}
