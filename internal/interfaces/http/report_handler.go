package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/application/receipts"
)

const (
	dateLayout    = "2006-01-02"
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler reportes de caja.
type ReportHandler struct {
	uc *receipts.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *receipts.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Collections descarga los cobros del rango en Excel.
// GET /api/reports/collections.xlsx?from=2025-03-01&to=2025-03-31
func (h *ReportHandler) Collections(c *fiber.Ctx) error {
	ispID := GetISPID(c)
	if ispID == "" {
		return unauthorized(c)
	}
	from, errFrom := time.ParseInLocation(dateLayout, c.Query("from"), time.Local)
	to, errTo := time.ParseInLocation(dateLayout, c.Query("to"), time.Local)
	if errFrom != nil || errTo != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to requeridos (YYYY-MM-DD)"})
	}
	data, filename, err := h.uc.CollectionReport(c.Context(), ispID, from, to)
	if err != nil {
		return respondError(c, err, "ISP no encontrado")
	}
	c.Set(fiber.HeaderContentType, xlsxMediaType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
