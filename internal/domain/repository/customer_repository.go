package repository

import (
	"context"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de abonados.
type CustomerRepository interface {
	// GetByID devuelve nil, nil si el abonado no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
