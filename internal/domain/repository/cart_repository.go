package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CartLineRow línea del carrito unida con el precio y stock vivos del producto.
// El stock puede haber cambiado desde que se agregó la línea: la lectura no
// re-valida, solo las escrituras lo hacen.
type CartLineRow struct {
	ID            string
	Quantity      int
	CreatedAt     time.Time
	ProductID     string
	ProductName   string
	ProductImage  string
	Price         decimal.Decimal
	StockQuantity int
}

// CartRepository define el puerto de persistencia para el carrito.
type CartRepository interface {
	ListWithProducts(userID string) ([]CartLineRow, error)
	GetByUserAndProduct(userID, productID string) (*entity.CartItem, error)
	GetLineWithStock(lineID, userID string) (*CartLineRow, error)
	Insert(item *entity.CartItem) error
	UpdateQuantity(lineID string, quantity int) error
	// Delete devuelve las filas afectadas: 0 significa línea inexistente o ajena.
	Delete(lineID, userID string) (int64, error)
	Clear(userID string) error
}
