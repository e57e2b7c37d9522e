package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/review"
)

// ReviewHandler maneja las peticiones HTTP de reseñas.
type ReviewHandler struct {
	uc *review.UseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *review.UseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar reseña
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "Reseña"
// @Success      201   {object}  dto.Response{data=dto.ReviewResponse}
// @Failure      403   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return respondError(c, fiber.StatusBadRequest, "product_id es requerido")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return respondError(c, fiber.StatusBadRequest, "rating debe estar entre 1 y 5")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "reseña publicada", out)
}

// ListByProduct godoc
// @Summary      Listar reseñas de un producto
// @Tags         reviews
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=[]dto.ReviewResponse}
// @Router       /api/reviews/product/{productId} [get]
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "reseñas", out)
}
