// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"productcache/internal/model"
)

// ProductStore is an interface for durable product storage.
// It abstracts the underlying data store, allowing for different
// implementations (e.g., in-memory, database).
type ProductStore interface {
	// Connect establishes the store connection and ensures the products
	// table exists. Called once per session by the service.
	Connect(ctx context.Context) error

	// Close releases the store connection.
	Close()

	// Insert adds a new product and returns it with the store-assigned ID.
	Insert(ctx context.Context, name string, price float64) (*model.Product, error)

	// FindByID retrieves a single product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// FindByNameContains returns all products whose name contains the
	// given substring, case-insensitively, ordered by ID.
	// Returns an empty slice if nothing matches.
	FindByNameContains(ctx context.Context, substring string) ([]model.Product, error)

	// FindAll returns all products ordered by ID.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]model.Product, error)

	// Update overwrites the name and price of the product with the given ID.
	// Returns ErrProductNotFound if no row matched.
	Update(ctx context.Context, product model.Product) error

	// Delete removes the product with the given ID.
	// Returns ErrProductNotFound if no row matched.
	Delete(ctx context.Context, id int64) error
}
