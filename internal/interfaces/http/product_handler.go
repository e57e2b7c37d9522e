package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        page       query  int     false  "Página (1-indexada)"  default(1)
// @Param        limit      query  int     false  "Tamaño de página"     default(12)
// @Param        category   query  string  false  "ID de categoría"
// @Param        brand      query  string  false  "Marca"
// @Param        minPrice   query  string  false  "Precio mínimo"
// @Param        maxPrice   query  string  false  "Precio máximo"
// @Param        search     query  string  false  "Búsqueda en nombre/descripción/marca"
// @Param        sortBy     query  string  false  "price, name o created_at"
// @Param        sortOrder  query  string  false  "asc o desc"
// @Param        featured   query  bool    false  "Solo destacados"
// @Success      200  {object}  dto.Response{data=dto.ProductListResponse}
// @Failure      400  {object}  dto.Response
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ListProductsQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "productos", out)
}

// Detail godoc
// @Summary      Detalle de producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductDetailResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto", out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.CategoryID == "" {
		return respondError(c, fiber.StatusBadRequest, "name y category_id son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "producto creado", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	soft, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if soft {
		return respondOK(c, "producto desactivado (tiene pedidos asociados)", nil)
	}
	return respondOK(c, "producto eliminado", nil)
}
