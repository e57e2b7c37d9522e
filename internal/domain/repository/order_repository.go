package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// OrderSummary pedido más el número de líneas (listado del cliente).
type OrderSummary struct {
	Order     entity.Order
	ItemCount int
}

// AdminOrderRow pedido más datos del cliente para el panel de administración.
type AdminOrderRow struct {
	Order         entity.Order
	CustomerEmail string
	ItemCount     int
}

// OrderItemRow línea del pedido unida con los datos actuales del producto.
type OrderItemRow struct {
	Item         entity.OrderItem
	ProductName  string
	ProductImage string
	ProductBrand string
}

// OrderRepository define el puerto de persistencia para Order y OrderItem.
// Las filas de pedido son inmutables salvo el status.
type OrderRepository interface {
	// Create persiste la cabecera; devuelve ErrDuplicate si el order_number colisiona.
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetByIDAndUser(id, userID string) (*entity.Order, error)
	ListByUser(userID string) ([]OrderSummary, error)
	ListAdmin(status string, limit, offset int) ([]AdminOrderRow, int, error)
	ItemsWithProducts(orderID string) ([]OrderItemRow, error)
	UpdateStatus(id, status string) error
	// HasDeliveredProduct indica si el usuario tiene un pedido entregado que incluya el producto.
	HasDeliveredProduct(userID, productID string) (bool, error)
	CountByUser(userID string) (int, error)
}
