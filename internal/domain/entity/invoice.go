package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cobro de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusVoid    = "void"
)

// Invoice factura mensual del servicio (o cargo puntual: instalación, equipo).
type Invoice struct {
	ID          string
	ISPID       string
	CustomerID  string
	Number      string
	Description string
	PeriodStart *time.Time // nil en cargos que no corresponden a un período
	PeriodEnd   *time.Time
	NetTotal    decimal.Decimal
	TaxTotal    decimal.Decimal
	GrandTotal  decimal.Decimal
	Paid        decimal.Decimal // acumulado de pagos aplicados
	Status      string          // ver constantes InvoiceStatus*
	IssuedAt    time.Time
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
