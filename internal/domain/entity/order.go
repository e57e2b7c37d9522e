package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Métodos de pago aceptados.
const (
	PaymentCOD          = "cod"
	PaymentBankTransfer = "bank_transfer"
	PaymentCreditCard   = "credit_card"
)

// Order es la foto inmutable de una compra. Una vez creada, solo Status cambia
// (y solo vía admin). Los datos de envío se copian del request, no del perfil:
// el perfil puede cambiar después y el pedido no debe moverse con él.
type Order struct {
	ID              string
	UserID          string
	OrderNumber     string // único; ORD + epoch millis + sufijo aleatorio
	TotalAmount     decimal.Decimal
	ShippingFee     decimal.Decimal
	FinalAmount     decimal.Decimal // TotalAmount + ShippingFee
	PaymentMethod   string
	Status          string
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValidPayment indica si el método de pago está en el conjunto aceptado.
func IsValidPayment(method string) bool {
	switch method {
	case PaymentCOD, PaymentBankTransfer, PaymentCreditCard:
		return true
	}
	return false
}

// IsValidOrderStatus indica si el valor es uno de los cinco estados conocidos.
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition valida la máquina de estados del pedido:
// pending → confirmed → shipping → delivered, con cancelled alcanzable desde
// cualquier estado no terminal. delivered y cancelled son terminales.
func CanTransition(from, to string) bool {
	if !IsValidOrderStatus(from) || !IsValidOrderStatus(to) {
		return false
	}
	if from == to {
		return false
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusShipping || to == OrderStatusCancelled
	case OrderStatusShipping:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	}
	// delivered y cancelled: sin salidas
	return false
}
