package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/admin"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// AdminHandler maneja las peticiones HTTP del panel de administración.
type AdminHandler struct {
	dashboardUC *admin.DashboardUseCase
	orderUC     *admin.OrderUseCase
	userUC      *admin.UserUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(dashboardUC *admin.DashboardUseCase, orderUC *admin.OrderUseCase, userUC *admin.UserUseCase) *AdminHandler {
	return &AdminHandler{dashboardUC: dashboardUC, orderUC: orderUC, userUC: userUC}
}

// Dashboard godoc
// @Summary      Estadísticas del panel
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.DashboardResponse}
// @Failure      403  {object}  dto.Response
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Dashboard(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "dashboard", out)
}

// ListOrders godoc
// @Summary      Listar pedidos de todos los usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.Response{data=dto.AdminOrderListResponse}
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	var q dto.ListOrdersQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	out, err := h.orderUC.List(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "pedidos", out)
}

// OrderDetail godoc
// @Summary      Detalle de cualquier pedido
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Response{data=dto.OrderDetailResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/admin/orders/{id} [get]
func (h *AdminHandler) OrderDetail(c *fiber.Ctx) error {
	out, err := h.orderUC.Detail(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "pedido", out)
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de un pedido
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Response{data=dto.OrderResponse}
// @Failure      409   {object}  dto.Response
// @Router       /api/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Status == "" {
		return respondError(c, fiber.StatusBadRequest, "status es requerido")
	}
	out, err := h.orderUC.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "estado actualizado", out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.Response{data=[]dto.UserResponse}
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	users, meta, err := h.userUC.List(page, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "usuarios", fiber.Map{"items": users, "meta": meta})
}

// GetUser godoc
// @Summary      Detalle de un usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.userUC.Get(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "usuario", out)
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.AdminUpdateUserRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.AdminUpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return respondError(c, fiber.StatusBadRequest, "name, email y role son requeridos")
	}
	out, err := h.userUC.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "usuario actualizado", out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	soft, err := h.userUC.Delete(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if soft {
		return respondOK(c, "usuario desactivado (tiene pedidos asociados)", nil)
	}
	return respondOK(c, "usuario eliminado", nil)
}
