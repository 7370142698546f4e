package repository

import (
	"context"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

// ISPRepository define el puerto de persistencia para el ISP (tenant).
// La implementación vive en infrastructure.
type ISPRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ISP, error)
}
