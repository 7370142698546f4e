package dto

import "github.com/jhoicas/isp-cobros/internal/domain/invoicing"

// RecalculateInvoiceRequest body para POST /api/invoices/recalculate.
type RecalculateInvoiceRequest struct {
	Lines []invoicing.Line `json:"lines"`
}

// RecalculateInvoiceResponse totales recalculados con el detalle por línea.
type RecalculateInvoiceResponse = invoicing.Totals
