// Package errors provides sentinel errors for product and session operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when no product row matches the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrSessionAlreadyOpen is returned by OpenSession while a session is open.
	ErrSessionAlreadyOpen = errors.New("session is already open")

	// ErrSessionNotOpen is returned by CloseSession and by every CRUD
	// operation invoked while no session is open.
	ErrSessionNotOpen = errors.New("session is not open")
)
