package services

import "errors"

// Sentinel errors returned by the product repository and cart service.
// Controllers map these to HTTP statuses; anything else coming out of
// the store is treated as a storage failure.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)
