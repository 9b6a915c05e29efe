package repo

import (
	"time"

	"gorm.io/gorm"
)

// CartItemFilter narrows a cart item listing. Zero values mean the
// criterion was not supplied; supplied criteria combine with AND.
type CartItemFilter struct {
	PhoneNumber string
	ProductID   uint
	MinQuantity int
	MaxQuantity int
	From        time.Time
	To          time.Time
}

// Apply attaches every supplied predicate to the query. Order among the
// predicates does not change the result set.
func (f CartItemFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.PhoneNumber != "" {
		q = q.Where("users.phone_number = ?", f.PhoneNumber)
	}
	if f.ProductID != 0 {
		q = q.Where("cart_items.product_id = ?", f.ProductID)
	}
	if f.MinQuantity > 0 {
		q = q.Where("cart_items.quantity >= ?", f.MinQuantity)
	}
	if f.MaxQuantity > 0 {
		q = q.Where("cart_items.quantity <= ?", f.MaxQuantity)
	}
	if !f.From.IsZero() {
		q = q.Where("cart_items.created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("cart_items.created_at <= ?", f.To)
	}
	return q
}
