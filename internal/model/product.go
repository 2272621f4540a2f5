// Package model holds the domain types shared by the store, cache and service.
package model

// Product represents a single catalog record.
// An ID of 0 means the store has not assigned one yet.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Equal compares two products by name and price only. The ID is deliberately
// excluded: it is assigned by the store on insert, and two records carrying
// the same name and price are treated as the same product.
func (p Product) Equal(other Product) bool {
	return p.Name == other.Name && p.Price == other.Price
}
