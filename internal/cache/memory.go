package cache

import (
	"strings"
	"sync"

	"productcache/internal/model"
)

// memoryCache is a map-backed implementation of ProductCache.
// A single RWMutex guards both maps so an invalidate-and-rewrite sequence
// is never observed half-applied.
type memoryCache struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	searches map[string][]model.Product
}

// NewMemoryCache creates an empty map-backed product cache.
func NewMemoryCache() ProductCache {
	return &memoryCache{
		products: make(map[int64]model.Product),
		searches: make(map[string][]model.Product),
	}
}

// Put stores or overwrites the product under the given ID.
func (c *memoryCache) Put(id int64, product model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[id] = product
}

// Product returns the cached product for the ID, if present.
func (c *memoryCache) Product(id int64) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	return p, ok
}

// Invalidate removes the ID's entry and scrubs the product from every
// cached search list. A list that becomes empty stays cached: it still
// reflects the last known result for its term.
func (c *memoryCache) Invalidate(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.products, id)
	for term, list := range c.searches {
		kept := list[:0]
		for _, p := range list {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		c.searches[term] = kept
	}
}

// PutSearch stores a copy of the list under the normalized term.
func (c *memoryCache) PutSearch(term string, products []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searches[normalize(term)] = append([]model.Product(nil), products...)
}

// Search returns a copy of the cached list for the normalized term, so
// callers may mutate the result without affecting cache state.
func (c *memoryCache) Search(term string) ([]model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list, ok := c.searches[normalize(term)]
	if !ok {
		return nil, false
	}
	return append([]model.Product(nil), list...), true
}

// InvalidateSearch removes exactly the given term's entry.
func (c *memoryCache) InvalidateSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.searches, normalize(term))
}

// InvalidateSearches removes every cached search entry.
func (c *memoryCache) InvalidateSearches() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.searches)
}

// Clear empties both maps.
func (c *memoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.products)
	clear(c.searches)
}

// ContainsProduct reports whether an entry exists for the ID.
func (c *memoryCache) ContainsProduct(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.products[id]
	return ok
}

// ContainsSearch reports whether an entry exists for the term.
func (c *memoryCache) ContainsSearch(term string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.searches[normalize(term)]
	return ok
}

func normalize(term string) string {
	return strings.ToLower(term)
}
