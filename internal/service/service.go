// Package service provides the cache-aside orchestration of product
// business logic over a store and a cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"productcache/internal/cache"
	perrors "productcache/internal/errors"
	"productcache/internal/model"
	"productcache/internal/store"
)

// ProductService defines the methods for managing products.
// Every CRUD method requires an open session and returns ErrSessionNotOpen
// otherwise.
type ProductService interface {
	// OpenSession establishes the store connection.
	// Returns ErrSessionAlreadyOpen if a session is already open.
	OpenSession(ctx context.Context) error

	// CloseSession releases the store connection and clears the cache.
	// Returns ErrSessionNotOpen if no session is open.
	CloseSession() error

	// FindByID retrieves a single product by its unique identifier,
	// consulting the cache before the store.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// FindByName returns all products whose name contains the given term,
	// consulting the cache before the store.
	// Returns an empty slice if nothing matches.
	FindByName(ctx context.Context, name string) ([]model.Product, error)

	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]model.Product, error)

	// Create adds a new product and returns it with the store-assigned ID.
	Create(ctx context.Context, product ProductCreateDto) (*model.Product, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product model.Product) error

	// Delete removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Delete(ctx context.Context, id int64) error
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name  string  `json:"name"  validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Service implements ProductService. Reads probe the cache first and
// populate it on a store hit; writes mutate the store, then invalidate the
// affected ID entry and every cached search list, since a write may change
// the result set of any previously cached search.
type Service struct {
	store  store.ProductStore
	cache  cache.ProductCache
	logger *slog.Logger

	mu   sync.RWMutex
	open bool
}

// NewService creates a ProductService over the given store and cache.
// A nil cache falls back to the no-op variant.
func NewService(st store.ProductStore, c cache.ProductCache, logger *slog.Logger) *Service {
	return &Service{
		store:  st,
		cache:  cache.Default(c),
		logger: logger.With("component", "service"),
	}
}

// OpenSession establishes the store connection.
// Returns ErrSessionAlreadyOpen if a session is already open.
func (s *Service) OpenSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return perrors.ErrSessionAlreadyOpen
	}
	if err := s.store.Connect(ctx); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	s.open = true
	s.logger.Info("Session opened")
	return nil
}

// CloseSession releases the store connection and clears the cache.
// Returns ErrSessionNotOpen if no session is open.
func (s *Service) CloseSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return perrors.ErrSessionNotOpen
	}
	s.store.Close()
	s.cache.Clear()
	s.open = false
	s.logger.Info("Session closed, cache cleared")
	return nil
}

// FindByID retrieves a product by its ID. A cache hit is returned without
// store access; a miss queries the store and caches the result.
func (s *Service) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	if p, ok := s.cache.Product(id); ok {
		s.logger.Debug("Cache hit for product", "id", id)
		return &p, nil
	}
	s.logger.Debug("Cache miss for product", "id", id)

	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	s.cache.Put(id, *product)
	return product, nil
}

// FindByName returns all products whose name contains the given term.
// The term is matched against the cache case-insensitively; a miss runs the
// substring query and caches the list plus each individual product, since a
// search result implies knowledge of those products.
func (s *Service) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	term := strings.ToLower(name)
	if list, ok := s.cache.Search(term); ok {
		s.logger.Debug("Cache hit for search term", "term", term)
		return list, nil
	}
	s.logger.Debug("Cache miss for search term", "term", term)

	products, err := s.store.FindByNameContains(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", name, err)
	}
	s.cache.PutSearch(term, products)
	for _, p := range products {
		s.cache.Put(p.ID, p)
	}
	return products, nil
}

// FindAll returns all products, caching each one by ID on the way out.
// The full listing itself is not cached: it has no search term to key on.
func (s *Service) FindAll(ctx context.Context) ([]model.Product, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, p := range products {
		s.cache.Put(p.ID, p)
	}
	return products, nil
}

// Create persists a new product, caches it under the store-assigned ID and
// invalidates all cached searches, since the new product may satisfy
// previously cached terms.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*model.Product, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, product.Name, product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.cache.Put(created.ID, *created)
	s.cache.InvalidateSearches()
	s.logger.Debug("Product created", "id", created.ID)
	return created, nil
}

// Update persists the product's new details. On success the ID entry is
// invalidated rather than refreshed in place, so the next read fetches the
// persisted state instead of trusting the caller's copy; all cached
// searches are invalidated as well.
// Returns ErrProductNotFound if no row matched the given ID.
func (s *Service) Update(ctx context.Context, product model.Product) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	if err := s.store.Update(ctx, product); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to update product with ID %d: %w", product.ID, err)
	}
	s.cache.Invalidate(product.ID)
	s.cache.InvalidateSearches()
	s.logger.Debug("Product updated, cache invalidated", "id", product.ID)
	return nil
}

// Delete removes the product from the store, then invalidates its ID entry
// and all cached searches.
// Returns ErrProductNotFound if no row matched the given ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	s.cache.Invalidate(id)
	s.cache.InvalidateSearches()
	s.logger.Debug("Product deleted, cache invalidated", "id", id)
	return nil
}

func (s *Service) checkSession() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return perrors.ErrSessionNotOpen
	}
	return nil
}
