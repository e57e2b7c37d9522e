package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ReviewRow reseña unida con nombre y avatar del autor.
type ReviewRow struct {
	Review     entity.Review
	UserName   string
	UserAvatar string
}

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	// Create persiste la reseña; devuelve ErrDuplicate si ya existe para (user, product).
	Create(review *entity.Review) error
	Exists(userID, productID string) (bool, error)
	ListByProduct(productID string) ([]ReviewRow, error)
	GetWithUser(id string) (*ReviewRow, error)
}
