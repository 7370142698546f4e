package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago admitidos en caja.
const (
	PaymentMethodCash     = "efectivo"
	PaymentMethodTransfer = "transferencia"
	PaymentMethodDeposit  = "deposito"
	PaymentMethodCheck    = "cheque"
	PaymentMethodCard     = "tarjeta"
)

// Payment pago recibido de un abonado; cada pago genera un recibo.
type Payment struct {
	ID          string
	ISPID       string
	CustomerID  string
	Number      string // número de recibo
	PaidAt      time.Time
	Amount      decimal.Decimal
	Method      string // ver constantes PaymentMethod*
	CashierName string

	// Detalle de transferencias, depósitos y cheques (opcional).
	Bank               string
	Reference          string
	DestinationAccount string
	HolderName         string
	CheckDate          *time.Time
	Note               string

	CreatedAt time.Time
}

// PaymentApplication monto de un pago aplicado a una factura.
type PaymentApplication struct {
	PaymentID string
	InvoiceID string
	Amount    decimal.Decimal
}
