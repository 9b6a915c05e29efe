package service

import "errors"

// Domain failure modes. Handlers classify these with errors.Is; anything
// not in this list is treated as an internal error and never shown to the
// caller verbatim.
var (
	ErrInvalidQuantity          = errors.New("invalid product quantity")
	ErrInvalidFilter            = errors.New("invalid filter")
	ErrInvalidPagination        = errors.New("invalid pagination")
	ErrUserNotFound             = errors.New("user not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrCartItemNotFound         = errors.New("cart item not found")
	ErrStockExceeded            = errors.New("not enough products in stock")
	ErrDecrementExceedsQuantity = errors.New("decrement exceeds cart quantity")
	ErrValidation               = errors.New("validation")
	ErrConflict                 = errors.New("write conflict")
)
