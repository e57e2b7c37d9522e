package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// OrderHandler maneja las peticiones HTTP de pedidos del cliente.
type OrderHandler struct {
	uc *checkout.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *checkout.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place godoc
// @Summary      Crear pedido desde el carrito
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "Datos de envío y pago"
// @Success      201   {object}  dto.Response{data=dto.OrderDetailResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	var errs []string
	if in.ShippingName == "" {
		errs = append(errs, "shipping_name es requerido")
	}
	if in.ShippingPhone == "" {
		errs = append(errs, "shipping_phone es requerido")
	}
	if in.ShippingAddress == "" {
		errs = append(errs, "shipping_address es requerido")
	}
	if in.PaymentMethod == "" {
		errs = append(errs, "payment_method es requerido")
	}
	if len(errs) > 0 {
		return respondError(c, fiber.StatusBadRequest, "datos de pedido inválidos", errs...)
	}
	out, err := h.uc.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "pedido creado", out)
}

// ListMine godoc
// @Summary      Listar pedidos propios
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.OrderSummaryResponse}
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMyOrders(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "pedidos", out)
}

// Detail godoc
// @Summary      Detalle de pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Response{data=dto.OrderDetailResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.MyOrderDetail(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "pedido", out)
}
