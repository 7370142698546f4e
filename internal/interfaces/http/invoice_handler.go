package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/billing"
	"github.com/jhoicas/isp-cobros/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc *billing.RecalculateUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.RecalculateUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Recalculate devuelve subtotal, impuesto y total de las líneas enviadas.
// POST /api/invoices/recalculate
func (h *InvoiceHandler) Recalculate(c *fiber.Ctx) error {
	if GetISPID(c) == "" {
		return unauthorized(c)
	}
	var in dto.RecalculateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	totals, err := h.uc.Recalculate(c.Context(), in)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(totals)
}
