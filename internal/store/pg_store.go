package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	perrors "productcache/internal/errors"
	"productcache/internal/model"
	"productcache/pkg/bootstrap"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
// The connection pool is created by Connect and released by Close, so the
// store's lifetime matches the service session that owns it.
type PgStore struct {
	url            string
	connectTimeout time.Duration
	pool           *pgxpool.Pool
}

// NewPgStore creates a PostgreSQL-backed ProductStore. No connection is
// made until Connect is called.
func NewPgStore(url string, connectTimeout time.Duration) *PgStore {
	return &PgStore{
		url:            url,
		connectTimeout: connectTimeout,
	}
}

// Connect creates the connection pool, pings the database and ensures the
// products table exists.
func (p *PgStore) Connect(ctx context.Context) error {
	pool, err := bootstrap.NewDbPool(ctx, p.url, p.connectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	p.pool = pool
	return nil
}

// Close releases the connection pool.
func (p *PgStore) Close() {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

// Insert adds a new product and returns it with the store-assigned ID.
func (p *PgStore) Insert(ctx context.Context, name string, price float64) (*model.Product, error) {
	product := model.Product{Name: name, Price: price}
	err := p.pool.QueryRow(ctx,
		`INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id`,
		name, price,
	).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &product, nil
}

// FindByID retrieves a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, price FROM products WHERE id = $1`,
		id,
	).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindByNameContains returns all products whose name contains the substring,
// case-insensitively, ordered by ID.
func (p *PgStore) FindByNameContains(ctx context.Context, substring string) ([]model.Product, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, price FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY id`,
		substring,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	return collectProducts(rows)
}

// FindAll returns all products ordered by ID.
func (p *PgStore) FindAll(ctx context.Context) ([]model.Product, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return collectProducts(rows)
}

// Update overwrites the name and price of the product with the given ID.
// Returns ErrProductNotFound if no row matched.
func (p *PgStore) Update(ctx context.Context, product model.Product) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE products SET name = $2, price = $3 WHERE id = $1`,
		product.ID, product.Name, product.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// Delete removes the product with the given ID.
// Returns ErrProductNotFound if no row matched.
func (p *PgStore) Delete(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// ensureSchema creates the products table if it does not exist yet.
func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name  TEXT             NOT NULL,
			price DOUBLE PRECISION NOT NULL
		)`)
	return err
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}
