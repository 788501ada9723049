// Package repository holds the SQL data access layer, one repository per
// entity. Domain failures surface as the sentinel errors below so handlers
// can map them to HTTP statuses with errors.Is instead of inspecting SQL
// error strings.
package repository

import "errors"

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailExists means a user with this email is already registered.
	ErrEmailExists = errors.New("email already exists")
	// ErrNotInStock means the movie has no copies left to rent.
	ErrNotInStock = errors.New("movie not in stock")
	// ErrNoOpenRental means no open rental exists for the customer/movie pair.
	ErrNoOpenRental = errors.New("no open rental for customer and movie")
	// ErrAlreadyReturned means the rental was already processed.
	ErrAlreadyReturned = errors.New("rental already processed")
)
