package repository

import (
	"context"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

// PaymentRepository define el puerto de lectura de pagos y sus aplicaciones.
type PaymentRepository interface {
	// GetByID devuelve nil, nil si el pago no existe.
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	// ListApplications devuelve las facturas a las que se aplicó el pago,
	// en el orden en que se registraron.
	ListApplications(ctx context.Context, paymentID string) ([]entity.PaymentApplication, error)
}
