package transport

type CartItemPostRequest struct {
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type AddToCartResponse struct {
	Outcome string `json:"outcome"`
	Item    any    `json:"item"`
}

type UserPostRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type ProductPostRequest struct {
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unit_price"`
	QuantityInStock int     `json:"quantity_in_stock"`
}
