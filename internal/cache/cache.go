// Package cache provides the in-memory lookup layer that shadows product
// store reads. It maps product IDs to products and normalized search terms
// to result lists, and is invalidated by the service around every write.
package cache

import "productcache/internal/model"

// ProductCache is the capability set the service needs from a cache.
// All operations are total: absence is a normal return value, never an error.
// Search terms are matched case-insensitively; implementations normalize
// the term on both store and lookup.
type ProductCache interface {
	// Put stores or overwrites the product under the given ID.
	Put(id int64, product model.Product)

	// Product returns the cached product for the ID. The second return
	// value reports whether an entry exists; false means "not cached",
	// not "does not exist".
	Product(id int64) (model.Product, bool)

	// Invalidate removes the ID's entry if present. It also scrubs the
	// product from every cached search list, so a stale copy can never be
	// served via a search hit after an update or delete.
	Invalidate(id int64)

	// PutSearch stores the result list under the normalized term,
	// replacing any prior list wholesale.
	PutSearch(term string, products []model.Product)

	// Search returns the cached list for the normalized term.
	Search(term string) ([]model.Product, bool)

	// InvalidateSearch removes exactly the given term's entry.
	InvalidateSearch(term string)

	// InvalidateSearches removes every cached search entry. Writes cannot
	// tell which cached queries a mutated row affects, so clearing all of
	// them is the only sound policy.
	InvalidateSearches()

	// Clear empties both maps unconditionally.
	Clear()

	// ContainsProduct reports whether an entry exists for the ID.
	ContainsProduct(id int64) bool

	// ContainsSearch reports whether an entry exists for the term.
	ContainsSearch(term string) bool
}

// Default returns the given cache, or the no-op variant when nil. Callers
// wire a concrete cache explicitly; there is no process-wide default.
func Default(c ProductCache) ProductCache {
	if c == nil {
		return NewNopCache()
	}
	return c
}
