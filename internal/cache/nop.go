package cache

import "productcache/internal/model"

// nopCache is the null-object implementation of ProductCache: every
// mutation is a silent no-op and every probe reports absence. Wiring it
// turns the service into a pure pass-through to the store.
type nopCache struct{}

// NewNopCache creates a cache that never stores anything.
func NewNopCache() ProductCache {
	return nopCache{}
}

func (nopCache) Put(int64, model.Product) {}

func (nopCache) Product(int64) (model.Product, bool) {
	return model.Product{}, false
}

func (nopCache) Invalidate(int64) {}

func (nopCache) PutSearch(string, []model.Product) {}

func (nopCache) Search(string) ([]model.Product, bool) {
	return nil, false
}

func (nopCache) InvalidateSearch(string) {}

func (nopCache) InvalidateSearches() {}

func (nopCache) Clear() {}

func (nopCache) ContainsProduct(int64) bool { return false }

func (nopCache) ContainsSearch(string) bool { return false }
