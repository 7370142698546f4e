package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

var _ repository.ISPRepository = (*ISPRepo)(nil)

// ISPRepo implementación de ISPRepository.
type ISPRepo struct {
	q Querier
}

// NewISPRepository construye el adaptador. Pasar pool o tx (Querier).
func NewISPRepository(q Querier) *ISPRepo {
	return &ISPRepo{q: q}
}

// GetByID obtiene un ISP por ID.
func (r *ISPRepo) GetByID(ctx context.Context, id string) (*entity.ISP, error) {
	const query = `
		SELECT id, name, COALESCE(tax_id, ''), COALESCE(address, ''), COALESCE(phone, ''),
		       COALESCE(email, ''), COALESCE(locale, ''), status, created_at, updated_at
		FROM isps WHERE id = $1`
	var i entity.ISP
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.TaxID, &i.Address, &i.Phone,
		&i.Email, &i.Locale, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get isp: %w", err)
	}
	return &i, nil
}
