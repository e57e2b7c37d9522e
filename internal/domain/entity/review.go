package entity

import "time"

// Review es la reseña de un producto: única por (user, product), rating 1..5.
// Solo puede crearse si el usuario tiene un pedido entregado con ese producto.
type Review struct {
	ID        string
	UserID    string
	ProductID string
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
