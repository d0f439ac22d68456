package domain

import "errors"

var (
	// ErrEmptyCategoryName is returned when a category lookup has no name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrEmptyProductID is returned when a product lookup has no id.
	ErrEmptyProductID = errors.New("product id cannot be empty")

	// ErrNoFallbackVariant is returned when a Factory is built without a fallback.
	ErrNoFallbackVariant = errors.New("product factory requires a fallback variant")
)
