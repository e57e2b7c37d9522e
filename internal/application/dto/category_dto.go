package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría (admin).
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryResponse salida de una categoría con el conteo de productos activos.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Image        string    `json:"image,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}
