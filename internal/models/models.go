package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name        string    `gorm:"not null;size:50"             json:"name"`
	PhoneNumber string    `gorm:"uniqueIndex;not null;size:15" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`

	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	Name            string    `gorm:"uniqueIndex;not null;size:50"          json:"name"`
	UnitPrice       float64   `gorm:"not null;check:unit_price >= 0"        json:"unit_price"`
	QuantityInStock int       `gorm:"not null;check:quantity_in_stock >= 0" json:"quantity_in_stock"`
	CreatedAt       time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"               json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product;not null"  json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product;not null"  json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0"            json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartItemView is the read projection for cart listings: quantity and
// creation time alongside denormalized user and product fields.
type CartItemView struct {
	ID              uint      `json:"id"`
	ProductID       uint      `json:"product_id"`
	ProductName     string    `json:"product_name"`
	UnitPrice       float64   `json:"unit_price"`
	Quantity        int       `json:"quantity"`
	QuantityInStock int       `json:"quantity_in_stock"`
	UserID          uint      `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserPhoneNumber string    `json:"user_phone_number"`
	CreatedAt       time.Time `json:"created_at"`
}
