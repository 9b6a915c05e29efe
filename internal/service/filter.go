package service

import (
	"fmt"

	"github.com/asiedu/ecommerce-cart/internal/pagination"
	"github.com/asiedu/ecommerce-cart/internal/repo"
)

// ValidateCartItemFilter checks every supplied criterion before any query
// is composed; a violation means the query never runs.
func ValidateCartItemFilter(f repo.CartItemFilter) error {
	if f.PhoneNumber != "" && (len(f.PhoneNumber) < 9 || len(f.PhoneNumber) > 15) {
		return fmt.Errorf("invalid phone number: %w", ErrInvalidFilter)
	}
	if f.MinQuantity < 0 || f.MaxQuantity < 0 {
		return fmt.Errorf("any specified item quantity must be greater than 0: %w", ErrInvalidFilter)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return fmt.Errorf("start date must be less than end date: %w", ErrInvalidFilter)
	}
	return nil
}

func ValidatePagination(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("invalid page: %w", ErrInvalidPagination)
	}
	if pageSize <= 0 {
		return fmt.Errorf("invalid page size: %w", ErrInvalidPagination)
	}
	if pageSize > pagination.MaxPageSize {
		return fmt.Errorf("page size too big: %w", ErrInvalidPagination)
	}
	return nil
}
