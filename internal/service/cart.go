package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"github.com/asiedu/ecommerce-cart/internal/pagination"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"gorm.io/gorm"
)

// AddOutcome tags what AddToCart did with the incoming delta.
type AddOutcome int

const (
	OutcomeCreated AddOutcome = iota + 1
	OutcomeMerged
	OutcomeRemoved
)

func (o AddOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeMerged:
		return "merged"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type CartService struct {
	Repo *repo.GormRepo
}

// ValidateStock checks the total quantity a cart item would hold after an
// operation against the product's available stock. Read-only.
func (s *CartService) ValidateStock(ctx context.Context, r *repo.GormRepo, productID uint, requestedTotal int) error {
	product, err := r.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
		}
		return err
	}
	if requestedTotal > product.QuantityInStock {
		return fmt.Errorf("requested %d of %d in stock: %w", requestedTotal, product.QuantityInStock, ErrStockExceeded)
	}
	return nil
}

// AddToCart reconciles an incoming quantity delta against the (user,
// product) line item. A first add creates the item, a repeated add merges
// into it; at most one row ever exists per pair. The whole lookup-check-
// write sequence runs in one transactional session. Concurrent adds for
// the same pair can still race each other past the stock check; there is
// no cross-session lock by design.
//
// A negative delta is only legal against an existing item: it merges the
// quantity down, removes the item when the total reaches zero or below,
// and fails with ErrDecrementExceedsQuantity when its magnitude exceeds
// the held quantity. No external route currently reaches this path.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (AddOutcome, *models.CartItem, error) {
	var (
		outcome AddOutcome
		result  *models.CartItem
	)

	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		exists, err := tx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}

		existing, err := tx.GetCartItem(ctx, userID, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing == nil {
			if quantity <= 0 {
				return fmt.Errorf("quantity must be greater than 0 on creation: %w", ErrInvalidQuantity)
			}
			if err := s.ValidateStock(ctx, tx, productID, quantity); err != nil {
				return err
			}
			item := &models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.CreateCartItem(ctx, item); err != nil {
				return err
			}
			outcome = OutcomeCreated
			result = item
			return nil
		}

		if quantity < 0 && existing.Quantity < -quantity {
			return fmt.Errorf("cart holds %d: %w", existing.Quantity, ErrDecrementExceedsQuantity)
		}

		total := existing.Quantity + quantity
		if total <= 0 {
			if err := tx.DeleteCartItem(ctx, existing.ID); err != nil {
				return mapWriteErr(err)
			}
			outcome = OutcomeRemoved
			result = existing
			return nil
		}

		if err := s.ValidateStock(ctx, tx, productID, total); err != nil {
			return err
		}
		if err := tx.UpdateCartItemQuantity(ctx, existing.ID, total); err != nil {
			return mapWriteErr(err)
		}
		existing.Quantity = total
		outcome = OutcomeMerged
		result = existing
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return outcome, result, nil
}

// RemoveFromCart deletes the line item for the pair. A second removal for
// the same pair reports ErrCartItemNotFound.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uint) error {
	if err := s.Repo.DeleteCartItemByPair(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d, product %d: %w", userID, productID, ErrCartItemNotFound)
		}
		return err
	}
	return nil
}

func (s *CartService) RemoveCartItemByID(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCartItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", id, ErrCartItemNotFound)
		}
		return err
	}
	return nil
}

func (s *CartService) GetCartItem(ctx context.Context, userID, productID uint) (*models.CartItemView, error) {
	view, err := s.Repo.GetCartItemViewByPair(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d, product %d: %w", userID, productID, ErrCartItemNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (s *CartService) GetCartItemByID(ctx context.Context, id uint) (*models.CartItemView, error) {
	view, err := s.Repo.GetCartItemView(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", id, ErrCartItemNotFound)
		}
		return nil, err
	}
	return view, nil
}

// UpdateCartItem replaces the quantity of an existing item identified by
// id. The replacement quantity is stock-checked like any other total.
func (s *CartService) UpdateCartItem(ctx context.Context, id, userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0: %w", ErrInvalidQuantity)
	}

	var item *models.CartItem
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		existing, err := tx.GetCartItemByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart item %d: %w", id, ErrCartItemNotFound)
			}
			return err
		}

		exists, err := tx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}

		if err := s.ValidateStock(ctx, tx, productID, quantity); err != nil {
			return err
		}

		if err := tx.ReplaceCartItem(ctx, id, userID, productID, quantity); err != nil {
			return mapWriteErr(err)
		}
		existing.UserID = userID
		existing.ProductID = productID
		existing.Quantity = quantity
		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListCartItems validates the filters and pagination, then serves one page
// of the filtered set. TotalItems is counted before slicing, so it is
// invariant across pages of the same filter set.
func (s *CartService) ListCartItems(ctx context.Context, f repo.CartItemFilter, page, pageSize int) (pagination.Page[models.CartItemView], error) {
	var empty pagination.Page[models.CartItemView]

	if err := ValidateCartItemFilter(f); err != nil {
		return empty, err
	}
	if err := ValidatePagination(page, pageSize); err != nil {
		return empty, err
	}

	total, items, err := s.Repo.ListCartItems(ctx, f, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return empty, err
	}

	return pagination.NewPage(page, pageSize, total, items), nil
}

func mapWriteErr(err error) error {
	if errors.Is(err, repo.ErrNoRowAffected) {
		return fmt.Errorf("%v: %w", err, ErrConflict)
	}
	return err
}
