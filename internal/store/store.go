// Package store provides interfaces for user and product storage operations.
package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/abgdnv/crudapi/internal/store/db"
	"github.com/shopspring/decimal"
)

// UserStore is an interface for user storage operations.
// Every method issues exactly one SQL statement.
type UserStore interface {
	// FindAll returns every user in storage order.
	// Returns an empty slice if no users exist.
	FindAll(ctx context.Context) ([]db.User, error)

	// Create inserts a user and returns it with the store-assigned ID.
	Create(ctx context.Context, name, email string) (*db.User, error)

	// Update replaces the name and email of an existing user.
	// Returns ErrUserNotFound if no user exists with the given ID.
	Update(ctx context.Context, id int64, name, email string) error

	// DeleteByID removes a user by its ID.
	// Returns ErrUserNotFound if no user exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// ProductStore is an interface for product storage operations.
// Every method issues exactly one SQL statement.
type ProductStore interface {
	// FindAll returns every product in storage order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// Create inserts a product and returns it with the store-assigned ID.
	Create(ctx context.Context, name string, price decimal.Decimal) (*db.Product, error)

	// Update replaces the name and price of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, name string, price decimal.Decimal) error

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every product and returns the number of deleted rows.
	DeleteAll(ctx context.Context) (int64, error)
}

// Executor is the subset of *db.DB the stores depend on.
type Executor interface {
	Query(ctx context.Context, q sq.Sqlizer, scan func(*sql.Rows) error) error
	Insert(ctx context.Context, q sq.InsertBuilder) (db.Result, error)
	Exec(ctx context.Context, q sq.Sqlizer) (db.Result, error)
}
