package catalog

import "context"

// Service is the orchestration layer over Store. It adds exactly one
// contract: GetOrFail turns a miss into ErrProductNotFound, so callers have
// to handle the absent case explicitly instead of ignoring an empty value.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListAll() []Product {
	return s.store.List()
}

// GetOrFail returns the product for id, or ErrProductNotFound when id is
// nil or nothing is stored under it.
func (s *Service) GetOrFail(id *int64) (Product, error) {
	if id == nil {
		return Product{}, ErrProductNotFound
	}

	p, ok := s.store.GetByID(*id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// Create stores p as given. No validation happens here: names and prices
// are accepted exactly as submitted, including empty, negative, NaN and
// infinite values.
func (s *Service) Create(p Product) Product {
	return s.store.Save(p)
}

func (s *Service) Count() int {
	return s.store.Len()
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
