package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// respondOK responde 200 con la envolvente estándar.
func respondOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data})
}

// respondCreated responde 201 con la envolvente estándar.
func respondCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// respondError responde con la envolvente de error y el status indicado.
func respondError(c *fiber.Ctx, status int, message string, errs ...string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message, Errors: errs})
}

// respondDomainError traduce errores de dominio a status HTTP. Errores no
// mapeados devuelven 500 sin filtrar el detalle interno.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidTransition):
		return respondError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrEmptyCart):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return respondError(c, fiber.StatusInternalServerError, "error interno del servidor")
}
