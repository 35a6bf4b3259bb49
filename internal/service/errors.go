package service

import "errors"

// Sentinel error kinds every service operation resolves to. Handlers map them
// to HTTP statuses with errors.Is; messages wrapped around them stay
// human-readable because the presentation layer shows them directly.
var (
	// ErrNotFound: a referenced stock item, purchase or sale does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock: a removal or sale asks for more weight than the
	// stock item currently holds.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation: invalid input that survived transport-level binding
	// (e.g. a purchase whose line items all filtered out).
	ErrValidation = errors.New("validation error")
)
