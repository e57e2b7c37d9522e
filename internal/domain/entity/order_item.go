package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea inmutable del pedido. Price es el precio unitario
// al momento de la compra (copiado, no referenciado): cambios posteriores del
// producto nunca alteran pedidos históricos.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal // precio unitario al comprar
	Total     decimal.Decimal // Price × Quantity
}
