package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ListProductsQuery parámetros del listado público de productos.
// SortBy y SortOrder se validan contra una whitelist en el use case.
type ListProductsQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Category  string `query:"category"`
	Brand     string `query:"brand"`
	MinPrice  string `query:"minPrice"`
	MaxPrice  string `query:"maxPrice"`
	Search    string `query:"search"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Featured  bool   `query:"featured"`
}

// CreateProductRequest entrada para crear un producto (admin).
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=2"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Brand         string           `json:"brand"`
	Model         string           `json:"model"`
	Color         string           `json:"color"`
	Storage       string           `json:"storage"`
	RAM           string           `json:"ram"`
	ScreenSize    string           `json:"screen_size"`
	Battery       string           `json:"battery"`
	Camera        string           `json:"camera"`
	OS            string           `json:"os"`
	Image         string           `json:"image"`
	Images        json.RawMessage  `json:"images"`
	CategoryID    string           `json:"category_id" validate:"required"`
	StockQuantity int              `json:"stock_quantity" validate:"min=0"`
	IsFeatured    bool             `json:"is_featured"`
}

// UpdateProductRequest actualización parcial de un producto (nil = sin cambio).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=2"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	Color         *string          `json:"color"`
	Storage       *string          `json:"storage"`
	RAM           *string          `json:"ram"`
	ScreenSize    *string          `json:"screen_size"`
	Battery       *string          `json:"battery"`
	Camera        *string          `json:"camera"`
	OS            *string          `json:"os"`
	Image         *string          `json:"image"`
	Images        json.RawMessage  `json:"images"`
	CategoryID    *string          `json:"category_id"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	IsFeatured    *bool            `json:"is_featured"`
}

// ProductResponse salida de un producto con sus agregados de reseñas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Color         string          `json:"color"`
	Storage       string          `json:"storage"`
	RAM           string          `json:"ram"`
	ScreenSize    string          `json:"screen_size"`
	Battery       string          `json:"battery"`
	Camera        string          `json:"camera"`
	OS            string          `json:"os"`
	Image         string          `json:"image"`
	Images        json.RawMessage `json:"images"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	IsFeatured    bool            `json:"is_featured"`
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	PageMeta
}

// ProductDetailResponse producto más sus reseñas recientes.
type ProductDetailResponse struct {
	ProductResponse
	RecentReviews []ReviewResponse `json:"recent_reviews"`
}
