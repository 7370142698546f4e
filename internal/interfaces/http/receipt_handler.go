package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/application/receipts"
)

const receiptNotFound = "recibo no encontrado"

// ReceiptHandler expone el recibo de pago: datos, ticket, impresión, PDF,
// enlace compartido y correo.
type ReceiptHandler struct {
	uc *receipts.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipts.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Get devuelve el view-model del recibo.
// GET /api/receipts/:id
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	data, err := h.uc.Load(c.Context(), ispID, c.Params("id"))
	if err != nil {
		return respondError(c, err, receiptNotFound)
	}
	return c.JSON(data)
}

// Ticket devuelve el texto etiquetado para la impresora.
// GET /api/receipts/:id/ticket?width=48
func (h *ReceiptHandler) Ticket(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	width, err := queryWidth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "width debe ser numérico"})
	}
	text, err := h.uc.RenderText(c.Context(), ispID, c.Params("id"), width)
	if err != nil {
		return respondError(c, err, receiptNotFound)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(text)
}

// Print envía el recibo a la impresora térmica.
// POST /api/receipts/:id/print
func (h *ReceiptHandler) Print(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	var in dto.PrintReceiptRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	id := c.Params("id")
	if err := h.uc.Print(c.Context(), ispID, id, in.Width, in.PrinterAddr); err != nil {
		return respondError(c, err, receiptNotFound)
	}
	return c.JSON(dto.PrintReceiptResponse{Status: "printed", ReceiptID: id})
}

// PDF descarga el recibo en PDF.
// GET /api/receipts/:id/pdf
func (h *ReceiptHandler) PDF(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.uc.PDF(c.Context(), ispID, c.Params("id"))
	if err != nil {
		return respondError(c, err, receiptNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Share sube el PDF y devuelve un enlace temporal.
// POST /api/receipts/:id/share
func (h *ReceiptHandler) Share(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	url, err := h.uc.Share(c.Context(), ispID, c.Params("id"))
	if err != nil {
		return respondError(c, err, receiptNotFound)
	}
	return c.JSON(dto.ShareReceiptResponse{URL: url, ExpiresInSeconds: int(h.uc.PresignTTL().Seconds())})
}

// Email envía el recibo por correo.
// POST /api/receipts/:id/email
func (h *ReceiptHandler) Email(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	var in dto.EmailReceiptRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	to, err := h.uc.Email(c.Context(), ispID, c.Params("id"), in.To)
	if err != nil {
		return respondError(c, err, receiptNotFound)
	}
	return c.JSON(dto.EmailReceiptResponse{Status: "sent", To: to})
}

func queryWidth(c *fiber.Ctx) (int, error) {
	raw := c.Query("width")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
