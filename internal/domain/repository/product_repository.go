package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductFilter filtros del listado público de productos. Cada campo presente
// agrega un predicado parametrizado; los ausentes no tocan el WHERE.
type ProductFilter struct {
	CategoryID string
	Brand      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string // substring case-insensitive sobre name/description/brand
	Featured   bool
}

// ProductListRow producto más los agregados derivados para el catálogo.
type ProductListRow struct {
	Product       entity.Product
	CategoryName  string
	AverageRating decimal.Decimal // promedio de ratings, 0 si no hay reseñas
	ReviewCount   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetActiveDetail(id string) (*ProductListRow, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int, sortBy, sortOrder string) ([]ProductListRow, int, error)
	HasOrderHistory(id string) (bool, error)
	Deactivate(id string) error
	Delete(id string) error
	// DecrementStock descuenta stock solo si queda suficiente (UPDATE condicional).
	// Devuelve false si el stock era insuficiente; el caller debe abortar la transacción.
	DecrementStock(productID string, quantity int) (bool, error)
}
