package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// CartHandler maneja las peticiones HTTP del carrito (todas autenticadas).
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.CartResponse}
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "carrito", out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.Response{data=dto.CartResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return respondError(c, fiber.StatusBadRequest, "product_id es requerido")
	}
	out, err := h.uc.Add(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto agregado al carrito", out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.Response{data=dto.CartResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdateQuantity(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "cantidad actualizada", out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.Response{data=dto.CartResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "línea eliminada", out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(GetUserID(c)); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "carrito vaciado", nil)
}
