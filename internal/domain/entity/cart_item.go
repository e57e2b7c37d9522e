package entity

import "time"

// CartItem representa una línea del carrito: única por (user, product), quantity >= 1.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
