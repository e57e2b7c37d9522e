package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest datos de envío y pago para convertir el carrito en pedido.
// Los campos de envío se copian al pedido tal cual (snapshot), no se leen del perfil.
type PlaceOrderRequest struct {
	ShippingName    string `json:"shipping_name" validate:"required,min=2"`
	ShippingPhone   string `json:"shipping_phone" validate:"required"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=10"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cod bank_transfer credit_card"`
	Notes           string `json:"notes"`
}

// OrderResponse cabecera de un pedido.
type OrderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
	ShippingName    string          `json:"shipping_name"`
	ShippingPhone   string          `json:"shipping_phone"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderSummaryResponse pedido con el número de líneas (listado del cliente).
type OrderSummaryResponse struct {
	OrderResponse
	ItemCount int `json:"item_count"`
}

// OrderItemResponse línea de pedido con datos del producto.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	ProductBrand string          `json:"product_brand,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}

// OrderDetailResponse pedido completo con sus líneas.
type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

// UpdateOrderStatusRequest cambio de estado del pedido (admin).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipping delivered cancelled"`
}
