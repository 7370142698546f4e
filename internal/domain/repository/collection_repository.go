package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CollectionRow pago recibido en el período, con los datos del abonado ya
// resueltos por la consulta.
type CollectionRow struct {
	PaymentID    string
	Number       string
	PaidAt       time.Time
	CustomerCode string
	CustomerName string
	Method       string
	CashierName  string
	Amount       decimal.Decimal
}

// CollectionRepository consultas de solo lectura para el reporte de cobros.
type CollectionRepository interface {
	// ListCollections pagos del ISP entre from y to (ambos inclusive),
	// ordenados por fecha de pago.
	ListCollections(ctx context.Context, ispID string, from, to time.Time) ([]CollectionRow, error)
}
