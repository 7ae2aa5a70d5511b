package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyGroceryList is returned when a comparison is requested with nothing to compare
	ErrEmptyGroceryList = errors.New("grocery list is empty")

	// ErrUnknownSortMode is returned for a sort mode outside price/delivery/availability
	ErrUnknownSortMode = errors.New("unknown sort mode")

	// ErrCatalogUnavailable is returned when the catalog repository cannot serve a read
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInvalidCatalog is returned when a catalog file fails structural validation
	ErrInvalidCatalog = errors.New("invalid catalog")
)
