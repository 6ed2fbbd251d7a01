package services

import "errors"

var (
	// ErrInvalidRating rejects ratings outside the 1-5 scale. No state
	// changes when it is returned.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUnknownProduct rejects interactions referencing a product that is
	// not in the catalog. No state changes when it is returned.
	ErrUnknownProduct = errors.New("product not found in catalog")
)
