package repo

import (
	"context"
	"errors"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"gorm.io/gorm"
)

// ErrNoRowAffected reports a write that did not change exactly one row.
var ErrNoRowAffected = errors.New("write affected no rows")

const cartItemViewColumns = `cart_items.id,
cart_items.product_id,
products.name AS product_name,
products.unit_price,
cart_items.quantity,
products.quantity_in_stock,
cart_items.user_id,
users.name AS user_name,
users.phone_number AS user_phone_number,
cart_items.created_at`

func (r *GormRepo) cartItemViewQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Joins("JOIN users ON users.id = cart_items.user_id").
		Joins("JOIN products ON products.id = cart_items.product_id")
}

// ListCartItems counts the filtered set, then returns one page of it
// projected to views. The count runs before slicing.
func (r *GormRepo) ListCartItems(ctx context.Context, f CartItemFilter, offset, limit int) (int64, []models.CartItemView, error) {
	var total int64
	if err := f.Apply(r.cartItemViewQuery(ctx)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.CartItemView, 0, limit)
	if err := f.Apply(r.cartItemViewQuery(ctx)).
		Select(cartItemViewColumns).
		Order("cart_items.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetCartItemView(ctx context.Context, id uint) (*models.CartItemView, error) {
	var view models.CartItemView
	if err := r.cartItemViewQuery(ctx).
		Select(cartItemViewColumns).
		Where("cart_items.id = ?", id).
		Take(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *GormRepo) GetCartItemViewByPair(ctx context.Context, userID, productID uint) (*models.CartItemView, error) {
	var view models.CartItemView
	if err := r.cartItemViewQuery(ctx).
		Select(cartItemViewColumns).
		Where("cart_items.user_id = ? AND cart_items.product_id = ?", userID, productID).
		Take(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetCartItemByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// UpdateCartItemQuantity sets the item's quantity in place, keeping its
// identity and creation timestamp.
func (r *GormRepo) UpdateCartItemQuantity(ctx context.Context, id uint, quantity int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrNoRowAffected
	}
	return nil
}

// ReplaceCartItem rewrites the mutable fields of an existing item.
func (r *GormRepo) ReplaceCartItem(ctx context.Context, id, userID, productID uint, quantity int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_id":    userID,
			"product_id": productID,
			"quantity":   quantity,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrNoRowAffected
	}
	return nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCartItemByPair(ctx context.Context, userID, productID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
