package db

import "github.com/shopspring/decimal"

// User is a row of the users table.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Product is a row of the products table.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
