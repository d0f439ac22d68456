package domain

import "errors"

// Validation errors for order submission.
var (
	ErrEmptyOrderID      = errors.New("order id cannot be empty")
	ErrNoItems           = errors.New("order must contain at least one item")
	ErrEmptyProductID    = errors.New("order item product id cannot be empty")
	ErrInvalidQuantity   = errors.New("order item quantity must be greater than zero")
	ErrMissingPrice      = errors.New("order item price is required")
	ErrNegativePrice     = errors.New("order item price cannot be negative")
	ErrMissingTotal      = errors.New("order total is required")
	ErrNegativeTotal     = errors.New("order total cannot be negative")
	ErrInvalidTransition = errors.New("invalid order state transition")
)
