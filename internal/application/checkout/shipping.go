package checkout

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Política de envío: gratis a partir del umbral, si no tarifa plana.
var (
	freeShippingThreshold = decimal.NewFromInt(500000)
	flatShippingFee       = decimal.NewFromInt(30000)
)

// shippingFee calcula la tarifa de envío según el subtotal.
func shippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	return flatShippingFee
}

// newOrderNumber genera un número de pedido legible: ORD + epoch millis + 3
// dígitos aleatorios. No es criptográfico; la unicidad real la garantiza el
// índice único de la tabla y el reintento del caller.
func newOrderNumber() string {
	return fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), rand.IntN(1000))
}
