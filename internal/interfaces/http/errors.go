package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/domain"
)

// respondError traduce los errores de dominio a status HTTP + dto.ErrorResponse.
// notFoundMsg personaliza el mensaje del 404.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrNoRecipient):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RECIPIENT", Message: err.Error()})
	case errors.Is(err, domain.ErrPrinterUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PRINTER_UNAVAILABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageDisabled), errors.Is(err, domain.ErrMailerDisabled):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "CHANNEL_DISABLED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}
