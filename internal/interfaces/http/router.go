package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/billing"
	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
	"github.com/jhoicas/isp-cobros/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Receipts    *receipts.UseCase
	Recalculate *billing.RecalculateUseCase
	ISPs        repository.ISPRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token y un ISP activo
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveISP(deps.ISPs))
	operators := RequireRole(jwt.RoleAdmin, jwt.RoleCashier)

	// Recibos de pago
	rcpts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.Receipts)
	rcpts.Get("/:id", receiptHandler.Get)
	rcpts.Get("/:id/ticket", receiptHandler.Ticket)
	rcpts.Get("/:id/pdf", receiptHandler.PDF)
	rcpts.Post("/:id/print", operators, receiptHandler.Print)
	rcpts.Post("/:id/share", operators, receiptHandler.Share)
	rcpts.Post("/:id/email", operators, receiptHandler.Email)

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Recalculate)
	invoices.Post("/recalculate", invoiceHandler.Recalculate)

	// Reportes (solo admin)
	reports := protected.Group("/reports", RequireRole(jwt.RoleAdmin))
	reportHandler := NewReportHandler(deps.Receipts)
	reports.Get("/collections.xlsx", reportHandler.Collections)
}
