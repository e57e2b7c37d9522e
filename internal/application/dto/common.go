package dto

// Response envolvente estándar de la API: {success, message, data?, errors?}.
// Todas las respuestas, de éxito o de error, usan esta forma.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// PageMeta metadatos de paginación 1-indexada para listados.
type PageMeta struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPageMeta calcula los metadatos de página a partir del total y el límite.
func NewPageMeta(totalItems, page, limit int) PageMeta {
	if page <= 0 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return PageMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
