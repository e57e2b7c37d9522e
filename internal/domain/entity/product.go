package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un teléfono del catálogo.
// StockQuantity nunca es negativo: el checkout lo descuenta con un UPDATE condicional.
type Product struct {
	ID            string
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta vigente
	OriginalPrice decimal.Decimal // precio antes de descuento (0 = sin descuento)
	Brand         string
	Model         string
	Color         string
	Storage       string
	RAM           string
	ScreenSize    string
	Battery       string
	Camera        string
	OS            string
	Image         string
	Images        json.RawMessage // galería adicional (array JSON de rutas)
	StockQuantity int
	IsFeatured    bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
