package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoryWithCount categoría más el número de productos activos que contiene.
type CategoryWithCount struct {
	Category     entity.Category
	ProductCount int
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetWithCount(id string) (*CategoryWithCount, error)
	ListWithCount() ([]CategoryWithCount, error)
}
