package repository

import (
	"context"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

// InvoiceRepository define el puerto de lectura de facturas.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByIDs devuelve las facturas en el mismo orden de ids; las que no
	// existen se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Invoice, error)
}
