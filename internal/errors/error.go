// Package errors provides sentinel errors for user and product operations.
package errors

import "errors"

var (
	// ErrUserNotFound is returned when an update or delete matched no user row.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when an update or delete matched no product row.
	ErrProductNotFound = errors.New("product not found")
)
