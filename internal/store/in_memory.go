package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	perrors "productcache/internal/errors"
	"productcache/internal/model"
)

// inMemory implements ProductStore using an in-memory map. It backs the
// service tests and local runs without a database.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	nextID   int64
}

// NewInMemoryStore creates a new in-memory ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]model.Product),
		nextID:   1,
	}
}

// Connect is a no-op: the maps are ready on construction.
func (s *inMemory) Connect(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *inMemory) Close() {}

// Insert adds a new product and returns it with the next free ID.
func (s *inMemory) Insert(_ context.Context, name string, price float64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := model.Product{
		ID:    s.nextID,
		Name:  name,
		Price: price,
	}
	s.nextID++
	s.products[product.ID] = product

	return &product, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindByNameContains returns all products whose name contains the substring,
// case-insensitively, ordered by ID.
func (s *inMemory) FindByNameContains(_ context.Context, substring string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(substring)
	list := make([]model.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			list = append(list, p)
		}
	}
	sortByID(list)
	return list, nil
}

// FindAll returns all products ordered by ID.
func (s *inMemory) FindAll(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	sortByID(list)
	return list, nil
}

// Update overwrites the name and price of the product with the given ID.
func (s *inMemory) Update(_ context.Context, product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; !exists {
		return perrors.ErrProductNotFound
	}
	s.products[product.ID] = product
	return nil
}

// Delete removes the product with the given ID.
func (s *inMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func sortByID(list []model.Product) {
	slices.SortFunc(list, func(a, b model.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
