package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	perrors "github.com/abgdnv/crudapi/internal/errors"
	"github.com/abgdnv/crudapi/internal/store/db"
	"github.com/shopspring/decimal"
)

const productsTable = "products"

// PgProductStore implements ProductStore on top of the PostgreSQL adapter.
type PgProductStore struct {
	db Executor
}

// NewPgProductStore creates a new instance of ProductStore.
func NewPgProductStore(exec Executor) *PgProductStore {
	return &PgProductStore{db: exec}
}

// FindAll retrieves all products ordered by ID.
func (p *PgProductStore) FindAll(ctx context.Context) ([]db.Product, error) {
	products := make([]db.Product, 0)
	q := db.Builder().Select("id", "name", "price").From(productsTable).OrderBy("id")
	err := p.db.Query(ctx, q, func(rows *sql.Rows) error {
		var pr db.Product
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Price); err != nil {
			return err
		}
		products = append(products, pr)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return products, nil
}

// Create adds a new product and returns it with the assigned ID.
func (p *PgProductStore) Create(ctx context.Context, name string, price decimal.Decimal) (*db.Product, error) {
	q := db.Builder().Insert(productsTable).Columns("name", "price").Values(name, price)
	res, err := p.db.Insert(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &db.Product{ID: res.InsertedID, Name: name, Price: price}, nil
}

// Update modifies an existing product's details.
// Returns ErrProductNotFound if no row matched the ID.
func (p *PgProductStore) Update(ctx context.Context, id int64, name string, price decimal.Decimal) error {
	q := db.Builder().Update(productsTable).
		Set("name", name).
		Set("price", price).
		Where(sq.Eq{"id": id})
	res, err := p.db.Exec(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.AffectedRows == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no row matched the ID.
func (p *PgProductStore) DeleteByID(ctx context.Context, id int64) error {
	res, err := p.db.Exec(ctx, db.Builder().Delete(productsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if res.AffectedRows == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// DeleteAll removes every product unconditionally.
func (p *PgProductStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := p.db.Exec(ctx, db.Builder().Delete(productsTable))
	if err != nil {
		return 0, fmt.Errorf("failed to delete all products: %w", err)
	}
	return res.AffectedRows, nil
}
